// Package gotrans provides a dictionary-style translation client over several
// interchangeable web translation backends.
//
// Each backend builds its own request (headers, signing, query encoding),
// performs a single HTTP call and normalizes the response into a common
// Translation record. Backends live in the provider package and are resolved
// by engine name through a Registry.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/gotrans"
//	    "github.com/ZaguanLabs/gotrans/provider"
//	)
//
//	func main() {
//	    t := gotrans.NewTranslator(provider.DefaultRegistry())
//
//	    result, err := t.Translate(context.Background(), gotrans.Request{
//	        Engine:     "youdao",
//	        Text:       "good morning",
//	        SourceLang: "en",
//	        TargetLang: "zh",
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(*result.Paraphrase) // 早上好
//	}
package gotrans
