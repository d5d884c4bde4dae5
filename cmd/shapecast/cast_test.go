package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shapecast/internal/geom"
	"github.com/vovakirdan/tui-shapecast/internal/scene/builtin"
	"github.com/vovakirdan/tui-shapecast/internal/storage"
	"github.com/vovakirdan/tui-shapecast/internal/sweep"
)

func TestParseBox(t *testing.T) {
	b, err := parseBox("1, 2, -1, 0")
	require.NoError(t, err)
	assert.Equal(t, geom.NewBox(-1, 0, 1, 2), b, "corners are canonicalized")

	_, err = parseBox("1,2,3")
	assert.Error(t, err)
	_, err = parseBox("1,2,x,4")
	assert.Error(t, err)
}

func TestParseVec(t *testing.T) {
	v, err := parseVec("0,-6.5")
	require.NoError(t, err)
	assert.Equal(t, geom.V(0, -6.5), v)

	_, err = parseVec("")
	assert.Error(t, err)
}

func TestPrintCast(t *testing.T) {
	sc := builtin.Demo()
	box := geom.NewBox(-0.5, -0.5, 0.5, 0.5)
	delta := geom.V(0, 6)

	var out bytes.Buffer
	printCast(&out, sc, sweep.Resolve(box, sc.Colliders, delta), sweep.ResolveAll(box, sc.Colliders, delta))

	text := out.String()
	assert.Contains(t, text, "Scene: demo")
	assert.Contains(t, text, "utd")
	assert.Contains(t, text, "Hit utd on collider 0 after 2.500")
	assert.Contains(t, text, "Stop:  (-0.50, 2.00)-(0.50, 3.00)")

	out.Reset()
	sideways := geom.V(3, 0)
	printCast(&out, sc, sweep.Resolve(box, sc.Colliders, sideways), sweep.ResolveAll(box, sc.Colliders, sideways))
	assert.Contains(t, out.String(), "No contacts.")
	assert.Contains(t, out.String(), "Clear: travelled 3.000")
}

func TestPrintHistory(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "casts.db"))
	require.NoError(t, err)
	defer store.Close()

	var out bytes.Buffer
	require.NoError(t, printHistory(&out, store, "", 10))
	assert.Contains(t, out.String(), "No casts recorded yet.")

	sc := builtin.Demo()
	res := sweep.Resolve(geom.NewBox(-0.5, -0.5, 0.5, 0.5), sc.Colliders, geom.V(0, 6))
	_, err = store.SaveCast(storage.NewCastRecord(sc.ID, "cli", res))
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, printHistory(&out, store, "demo", 10))
	assert.Contains(t, out.String(), "Cast history - demo")
	assert.Contains(t, out.String(), "utd 1")
}
