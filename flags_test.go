package main

import (
	"flag"
	"io"
	"strings"
	"testing"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("osl-notebook-kit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlags_SingleLimit(t *testing.T) {
	f, err := parseFlags(newFlagSet(), []string{"-image", "a.tif", "-vmin", "0"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	opts := f.previewOptions(1000, 800)
	if opts.VMin == nil || *opts.VMin != 0 {
		t.Fatalf("explicit zero vmin lost: %v", opts.VMin)
	}
	if opts.VMax != nil {
		t.Fatalf("vmax should stay automatic, got %v", *opts.VMax)
	}
	if opts.MaxW != 1000 || opts.MaxH != 800 {
		t.Fatalf("unexpected size %dx%d", opts.MaxW, opts.MaxH)
	}
}

func TestParseFlags_LimitHelpNamesLuminance(t *testing.T) {
	fs := newFlagSet()
	if _, err := parseFlags(fs, nil); err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, name := range []string{"vmin", "vmax"} {
		if u := fs.Lookup(name).Usage; !strings.Contains(u, "16-bit luminance") || !strings.Contains(u, "65535") {
			t.Fatalf("%s usage %q does not name the value range", name, u)
		}
	}
}

func TestParseFlags_Extents(t *testing.T) {
	f, err := parseFlags(newFlagSet(), []string{"-stack-extent", "0,0,100,50", "-common-extent", "10,5,90,45"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.StackExtent == nil || f.StackExtent.P2.X != 100 || f.CommonExtent == nil || f.CommonExtent.P1.Y != 5 {
		t.Fatalf("unexpected extents %+v %+v", f.StackExtent, f.CommonExtent)
	}
	if _, err := parseFlags(newFlagSet(), []string{"-stack-extent", "1,2,3"}); err == nil {
		t.Fatalf("expected error for short extent")
	}
}
