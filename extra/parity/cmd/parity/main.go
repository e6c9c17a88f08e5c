// Command parity runs the gpath parity checker over a small built-in corpus
// of (document, path) pairs and reports any cross-library divergence found.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dhawalhost/gpath/extra/parity"
)

var corpus = []parity.Case{
	{JSON: `{"name":{"first":"Tom","last":"Anderson"},"age":37}`, Path: "name.first"},
	{JSON: `{"name":{"first":"Tom","last":"Anderson"},"age":37}`, Path: "age"},
	{JSON: `{"children":["Sara","Alex","Jack"]}`, Path: "children.1"},
	{JSON: `{"children":["Sara","Alex","Jack"]}`, Path: "children"},
}

func main() {
	logger := log.New(os.Stdout, "parity: ", log.LstdFlags)
	failed := 0
	for _, c := range corpus {
		checks := []struct {
			name string
			fn   func(parity.Case) (*parity.Divergence, error)
		}{
			{"gjson", parity.CheckAgainstGJSON},
			{"gabs", parity.CheckAgainstGabs},
			{"fastjson", parity.CheckAgainstFastjson},
		}
		for _, chk := range checks {
			d, err := chk.fn(c)
			if err != nil {
				logger.Printf("skip %s %q: %v", chk.name, c.Path, err)
				continue
			}
			if d != nil {
				failed++
				logger.Printf("DIVERGENCE vs %s at %q: gpath=%s ref=%s", d.Reference, d.Path, d.GotGPath, d.GotRef)
			}
		}
	}
	if failed > 0 {
		fmt.Printf("%d divergence(s) found\n", failed)
		os.Exit(1)
	}
	fmt.Println("no divergence found")
}
