// Package scenes holds the five choreographies and the registry the CLI and
// the preview pick them from.
package scenes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iburimskiy/geometry-visualization/internal/anim"
	"github.com/iburimskiy/geometry-visualization/internal/camera"
)

// ErrUnknownScene is returned by Lookup for names not in the registry.
var ErrUnknownScene = errors.New("scenes: unknown scene")

// Constructor records a scene for the given camera.
type Constructor func(cam *camera.Camera) *anim.Scene

// Entry is one registered scene.
type Entry struct {
	Name  string
	Title string
	Build Constructor
}

// Builder binds the entry to a canvas size for a Player.
func (e Entry) Builder(width, height int) anim.Builder {
	return func() (*anim.Scene, error) {
		return e.Build(camera.New(width, height)), nil
	}
}

var registry = []Entry{
	{Name: "circles-to-temple", Title: "Circles to Temple", Build: CirclesToTemple},
	{Name: "hidden-five-reveal", Title: "The Hidden Five", Build: HiddenFiveReveal},
	{Name: "odd-symmetry", Title: "Odd Number Symmetry", Build: OddSymmetry},
	{Name: "pattern-of-five", Title: "Pattern of Five", Build: PatternOfFive},
	{Name: "sacred-cinematic", Title: "Sacred Geometry Cinematic", Build: SacredCinematic},
}

// All lists the scenes in a stable order.
func All() []Entry {
	return append([]Entry(nil), registry...)
}

// Names lists the scene names in registry order.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.Name
	}
	return names
}

// Lookup finds a scene by name, ignoring case.
func Lookup(name string) (Entry, error) {
	for _, e := range registry {
		if strings.EqualFold(e.Name, name) {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w %q (have %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
}
