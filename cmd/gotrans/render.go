package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ZaguanLabs/gotrans"
	"github.com/fatih/color"
)

var (
	textColor       = color.New(color.Bold, color.FgCyan)
	phoneticColor   = color.New(color.FgYellow)
	metaColor       = color.New(color.FgBlue)
	paraphraseColor = color.New(color.Bold, color.FgGreen)
	explainColor    = color.New(color.FgWhite)
)

// render writes a highlighted, human-readable view of t.
func render(w io.Writer, t *gotrans.Translation, sourceLang, targetLang string) {
	textColor.Fprint(w, t.Text)
	if t.Phonetic != nil && *t.Phonetic != "" {
		fmt.Fprint(w, " ")
		phoneticColor.Fprintf(w, "[%s]", *t.Phonetic)
	}
	fmt.Fprintln(w)

	metaColor.Fprintf(w, "%s: %s\n", t.Engine, gotrans.LanguagePair(sourceLang, targetLang))

	if t.Paraphrase != nil && *t.Paraphrase != "" {
		fmt.Fprint(w, "  ")
		paraphraseColor.Fprintln(w, *t.Paraphrase)
	}

	for _, explain := range t.Explains {
		explain = strings.TrimSpace(explain)
		if explain == "" {
			continue
		}
		fmt.Fprint(w, "  * ")
		explainColor.Fprintln(w, explain)
	}
}

// renderEngines lists the engines a registry can dispatch to.
func renderEngines(w io.Writer, engines []string, defaultEngine string) {
	for _, name := range engines {
		marker := " "
		if name == defaultEngine {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\n", marker, name)
	}
}

// outputJSON writes the translation as indented JSON.
func outputJSON(w io.Writer, t *gotrans.Translation) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(t)
}
