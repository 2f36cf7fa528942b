package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/farzanhk9/Story-Post-Square/internal/domain"
)

// Options carries every command line flag of a run. Flags are the only
// configuration source; the tool reads no environment variables and keeps no
// state between runs.
type Options struct {
	InputDir   string  `validate:"required"`
	OutputDir  string  `validate:"required"`
	Preset     string
	Longest    int     `validate:"min=0"`
	SafePad    int     `validate:"min=0"`
	BGColor    string  `validate:"required"`
	LogoPath   string
	LogoPos    string  `validate:"oneof=top-left top-right bottom-left bottom-right"`
	LogoScale  float64 `validate:"gt=0,lte=1"`
	LogoMargin int     `validate:"min=0"`
	Quality    int     `validate:"min=1,max=100"`
	Optimize   bool
	StripEXIF  bool
	Ext        string `validate:"oneof=jpg png"`
	Rename     string
	ZipName    string
	Verbose    bool
}

// Defaults returns an Options preloaded with the documented flag defaults.
func Defaults() Options {
	return Options{
		BGColor:    "#000000",
		LogoPos:    string(domain.PosBottomRight),
		LogoScale:  0.18,
		LogoMargin: 40,
		Quality:    88,
		Ext:        string(domain.FormatJPEG),
	}
}

var validate = validator.New()

// flagNames maps struct fields to the CLI flags they come from so validation
// errors read in terms the user typed.
var flagNames = map[string]string{
	"InputDir":   "--input",
	"OutputDir":  "--output",
	"Preset":     "--preset",
	"Longest":    "--longest",
	"SafePad":    "--safe-pad",
	"BGColor":    "--bgcolor",
	"LogoPath":   "--logo",
	"LogoPos":    "--logo-pos",
	"LogoScale":  "--logo-scale",
	"LogoMargin": "--logo-margin",
	"Quality":    "--quality",
	"Ext":        "--ext",
	"Rename":     "--rename",
	"ZipName":    "--zip",
}

// Validate normalizes the options in place and checks every constraint the
// CLI documents. It returns the first violation found.
func (o *Options) Validate() error {
	o.normalize()

	if err := validate.Struct(o); err != nil {
		return translateValidation(err)
	}
	if o.Preset != "" {
		if _, ok := domain.PresetByName(o.Preset); !ok {
			return fmt.Errorf("unknown preset %q, expected one of %s", o.Preset, strings.Join(domain.PresetNames(), ", "))
		}
	}
	if _, err := ParseHexColor(o.BGColor); err != nil {
		return fmt.Errorf("--bgcolor: %w", err)
	}
	if o.Longest == 0 && o.Preset == "" {
		return fmt.Errorf("%w: pass --preset or --longest", domain.ErrNoOutputMode)
	}
	return nil
}

// ResolveMode reports which geometry mode the run uses. Longest-side wins
// when both flags are set.
func (o Options) ResolveMode() (domain.TransformMode, error) {
	switch {
	case o.Longest > 0:
		return domain.ModeLongest, nil
	case o.Preset != "":
		return domain.ModeCanvas, nil
	default:
		return "", domain.ErrNoOutputMode
	}
}

// ModeConflict reports whether both transform modes were requested.
func (o Options) ModeConflict() bool {
	return o.Longest > 0 && o.Preset != ""
}

func (o *Options) normalize() {
	o.InputDir = strings.TrimSpace(o.InputDir)
	o.OutputDir = strings.TrimSpace(o.OutputDir)
	o.Preset = strings.ToLower(strings.TrimSpace(o.Preset))
	o.BGColor = strings.TrimSpace(o.BGColor)
	o.LogoPath = strings.TrimSpace(o.LogoPath)
	o.LogoPos = strings.ToLower(strings.TrimSpace(o.LogoPos))
	o.Ext = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(o.Ext, ".")))
	o.Rename = strings.TrimSpace(o.Rename)
	o.ZipName = strings.TrimSpace(o.ZipName)
	if o.ZipName != "" && !strings.Contains(path.Base(o.ZipName), ".") {
		o.ZipName += ".zip"
	}
}

func translateValidation(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	for _, e := range verrs {
		flag := flagNames[e.Field()]
		if flag == "" {
			flag = e.Field()
		}
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s is required", flag)
		case "oneof":
			return fmt.Errorf("%s must be one of: %s", flag, strings.ReplaceAll(e.Param(), " ", ", "))
		case "min", "max", "gt", "lte":
			return fmt.Errorf("%s is out of range", flag)
		default:
			return fmt.Errorf("%s has an invalid value", flag)
		}
	}
	return err
}
