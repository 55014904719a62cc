package pathtracererr

import (
	"errors"
	"strings"
	"testing"
)

func TestErrMissingFile_WrapsCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := ErrMissingFile("texture.png", cause)
	if !strings.Contains(err.Error(), "texture.png") {
		t.Errorf("expected path in message, got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to be unwrappable via errors.Is")
	}
}

func TestErrUnsupportedExtension_NamesPath(t *testing.T) {
	err := ErrUnsupportedExtension("scene.xyz")
	if !strings.Contains(err.Error(), "scene.xyz") {
		t.Errorf("expected path in message, got %q", err.Error())
	}
}

func TestErrNoBoundingBox_NamesChild(t *testing.T) {
	err := ErrNoBoundingBox("*geometry.Sphere")
	if !strings.Contains(err.Error(), "*geometry.Sphere") {
		t.Errorf("expected child description in message, got %q", err.Error())
	}
}
