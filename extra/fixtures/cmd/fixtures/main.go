// Command fixtures writes the generated documents from the fixtures package
// to extra/fixtures/testdata, where the fuzz seed corpus reads them.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/dhawalhost/gpath/extra/fixtures"
)

func main() {
	docs, err := fixtures.Build()
	if err != nil {
		log.Fatal(err)
	}
	dir := "extra/fixtures/testdata"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}
	for name, doc := range docs {
		p := filepath.Join(dir, name+".json")
		if err := os.WriteFile(p, []byte(doc), 0o644); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", p)
	}
}
