package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/farzanhk9/Story-Post-Square/internal/domain"
)

func validOptions() Options {
	o := Defaults()
	o.InputDir = "./in"
	o.OutputDir = "./out"
	o.Preset = "story"
	return o
}

func TestDefaults(t *testing.T) {
	o := Defaults()
	if o.BGColor != "#000000" {
		t.Fatalf("BGColor = %q, want %q", o.BGColor, "#000000")
	}
	if o.LogoPos != "bottom-right" {
		t.Fatalf("LogoPos = %q, want %q", o.LogoPos, "bottom-right")
	}
	if o.LogoScale != 0.18 {
		t.Fatalf("LogoScale = %v, want 0.18", o.LogoScale)
	}
	if o.LogoMargin != 40 {
		t.Fatalf("LogoMargin = %d, want 40", o.LogoMargin)
	}
	if o.Quality != 88 {
		t.Fatalf("Quality = %d, want 88", o.Quality)
	}
	if o.Ext != "jpg" {
		t.Fatalf("Ext = %q, want %q", o.Ext, "jpg")
	}
	if o.SafePad != 0 {
		t.Fatalf("SafePad = %d, want 0", o.SafePad)
	}
}

func TestValidateOK(t *testing.T) {
	o := validOptions()
	if err := o.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateMissingDirs(t *testing.T) {
	o := validOptions()
	o.InputDir = ""
	err := o.Validate()
	if err == nil || !strings.Contains(err.Error(), "--input") {
		t.Fatalf("Validate() = %v, want --input error", err)
	}

	o = validOptions()
	o.OutputDir = "   "
	err = o.Validate()
	if err == nil || !strings.Contains(err.Error(), "--output") {
		t.Fatalf("Validate() = %v, want --output error", err)
	}
}

func TestValidateNoMode(t *testing.T) {
	o := validOptions()
	o.Preset = ""
	o.Longest = 0
	err := o.Validate()
	if !errors.Is(err, domain.ErrNoOutputMode) {
		t.Fatalf("Validate() = %v, want ErrNoOutputMode", err)
	}
}

func TestValidateUnknownPreset(t *testing.T) {
	o := validOptions()
	o.Preset = "reel"
	err := o.Validate()
	if err == nil || !strings.Contains(err.Error(), "unknown preset") {
		t.Fatalf("Validate() = %v, want unknown preset error", err)
	}
}

func TestValidateBadColor(t *testing.T) {
	o := validOptions()
	o.BGColor = "#12345"
	err := o.Validate()
	if err == nil || !strings.Contains(err.Error(), "--bgcolor") {
		t.Fatalf("Validate() = %v, want --bgcolor error", err)
	}
}

func TestValidateBadExt(t *testing.T) {
	o := validOptions()
	o.Ext = "webp"
	err := o.Validate()
	if err == nil || !strings.Contains(err.Error(), "--ext") {
		t.Fatalf("Validate() = %v, want --ext error", err)
	}
}

func TestValidateBadLogoPos(t *testing.T) {
	o := validOptions()
	o.LogoPos = "center"
	err := o.Validate()
	if err == nil || !strings.Contains(err.Error(), "--logo-pos") {
		t.Fatalf("Validate() = %v, want --logo-pos error", err)
	}
}

func TestValidateQualityRange(t *testing.T) {
	o := validOptions()
	o.Quality = 101
	if err := o.Validate(); err == nil {
		t.Fatal("Validate() accepted quality 101")
	}
	o = validOptions()
	o.Quality = 0
	if err := o.Validate(); err == nil {
		t.Fatal("Validate() accepted quality 0")
	}
}

func TestValidateNormalizes(t *testing.T) {
	o := validOptions()
	o.Preset = "  STORY "
	o.Ext = ".JPG"
	o.LogoPos = "Bottom-Right"
	if err := o.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if o.Preset != "story" {
		t.Fatalf("Preset = %q after normalize", o.Preset)
	}
	if o.Ext != "jpg" {
		t.Fatalf("Ext = %q after normalize", o.Ext)
	}
	if o.LogoPos != "bottom-right" {
		t.Fatalf("LogoPos = %q after normalize", o.LogoPos)
	}
}

func TestValidateZipNameGetsExtension(t *testing.T) {
	o := validOptions()
	o.ZipName = "delivery"
	if err := o.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if o.ZipName != "delivery.zip" {
		t.Fatalf("ZipName = %q, want delivery.zip", o.ZipName)
	}

	o = validOptions()
	o.ZipName = "bundle.zip"
	if err := o.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if o.ZipName != "bundle.zip" {
		t.Fatalf("ZipName = %q, want bundle.zip", o.ZipName)
	}
}

func TestResolveMode(t *testing.T) {
	o := validOptions()
	mode, err := o.ResolveMode()
	if err != nil || mode != domain.ModeCanvas {
		t.Fatalf("ResolveMode() = %v, %v, want canvas", mode, err)
	}

	o.Longest = 1600
	mode, err = o.ResolveMode()
	if err != nil || mode != domain.ModeLongest {
		t.Fatalf("ResolveMode() = %v, %v, want longest", mode, err)
	}
	if !o.ModeConflict() {
		t.Fatal("ModeConflict() = false with both modes set")
	}

	o.Preset = ""
	o.Longest = 0
	if _, err := o.ResolveMode(); !errors.Is(err, domain.ErrNoOutputMode) {
		t.Fatalf("ResolveMode() error = %v, want ErrNoOutputMode", err)
	}
}
