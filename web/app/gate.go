package app

import (
	"fmt"
	"io"

	"github.com/Astemirdum/shelfshare/web/config"
	"github.com/Astemirdum/shelfshare/web/internal/gate"
)

// ExplainGate writes one line per path: the path, its class and what the gate does with it.
func ExplainGate(w io.Writer, cfg config.Gate, token string, paths ...string) error {
	g := gate.New(cfg)
	for _, p := range paths {
		d := g.Decide(p, token)
		action := "serve"
		if d.Redirect {
			action = "redirect " + d.Location
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", p, d.Class, action); err != nil {
			return err
		}
	}
	return nil
}
