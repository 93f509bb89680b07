package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/wireframe/pkg/site"
)

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"About Us", "about-us"},
		{"  Get Involved!  ", "get-involved"},
		{"FAQ & Help", "faq-help"},
		{"already-safe", "already-safe"},
		{"--dashes--", "dashes"},
		{"Ünïcode Page", "n-code-page"},
		{"!!!", "page"},
		{"", "page"},
	}
	for _, tt := range tests {
		if got := SafeFilename(tt.in); got != tt.want {
			t.Errorf("SafeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOutputNames(t *testing.T) {
	pages := []site.Page{
		{Name: "Home", Slug: "/"},
		{Name: "About Us", Slug: "/about"},
		{Name: "About us", Slug: "/about-2"},
		{Name: "Contact", Slug: "/contact"},
		{Name: "About Us", Slug: "/about-3"},
		{Name: "Landing", Slug: "/"},
		{Name: "About Us 2", Slug: "/x"},
	}
	want := []string{"home", "about-us", "about-us-2", "contact", "about-us-3", "home-2", "about-us-2-2"}

	got := OutputNames(pages)
	if len(got) != len(want) {
		t.Fatalf("OutputNames() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("name %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	artifacts := []Artifact{
		{Name: "home", Page: "Home", SVG: []byte("<svg/>")},
		{Name: "about", Page: "About", SVG: []byte("<svg></svg>")},
	}

	paths, err := WriteArtifacts(dir, artifacts)
	if err != nil {
		t.Fatalf("WriteArtifacts: %v", err)
	}
	if len(paths) != 2 || filepath.Base(paths[1]) != "about.svg" {
		t.Fatalf("paths = %v", paths)
	}
	data, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("home.svg = %q", data)
	}
}

func TestWriteArtifactsRejectsUnsafeNames(t *testing.T) {
	_, err := WriteArtifacts(t.TempDir(), []Artifact{{Name: "../escape", Page: "x"}})
	if err == nil {
		t.Fatal("expected error for unsafe artifact name")
	}
}
