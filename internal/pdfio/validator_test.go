package pdfio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidator_ValidateFile(t *testing.T) {
	tempDir := t.TempDir()

	txtPath := filepath.Join(tempDir, "order.txt")
	if err := os.WriteFile(txtPath, []byte("not a pdf"), 0o644); err != nil {
		t.Fatalf("Failed to create test txt file: %v", err)
	}

	emptyPath := filepath.Join(tempDir, "empty.pdf")
	if err := os.WriteFile(emptyPath, nil, 0o644); err != nil {
		t.Fatalf("Failed to create empty test file: %v", err)
	}

	largePath := filepath.Join(tempDir, "large.pdf")
	if err := os.WriteFile(largePath, make([]byte, 2048), 0o644); err != nil {
		t.Fatalf("Failed to create large test file: %v", err)
	}

	bogusPath := filepath.Join(tempDir, "bogus.pdf")
	if err := os.WriteFile(bogusPath, []byte("not really a pdf"), 0o644); err != nil {
		t.Fatalf("Failed to create bogus test file: %v", err)
	}

	validator := NewValidator(1024)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "empty path", path: "", wantErr: true},
		{name: "missing file", path: filepath.Join(tempDir, "missing.pdf"), wantErr: true},
		{name: "directory", path: tempDir, wantErr: true},
		{name: "wrong extension", path: txtPath, wantErr: true},
		{name: "empty file", path: emptyPath, wantErr: true},
		{name: "too large", path: largePath, wantErr: true},
		{name: "invalid pdf content", path: bogusPath, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidator_IsValidPDF(t *testing.T) {
	validator := NewValidator(1024)

	if validator.IsValidPDF(filepath.Join(t.TempDir(), "missing.pdf")) {
		t.Error("IsValidPDF() = true for a missing file")
	}
}
