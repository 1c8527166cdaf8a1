package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir", "nested")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestCreateDirectoryIfNotExists_Errors(t *testing.T) {
	if err := CreateDirectoryIfNotExists(""); err == nil {
		t.Error("Expected error for empty path")
	}

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	err := CreateDirectoryIfNotExists(file)
	if err == nil {
		t.Fatal("Expected error when path is a regular file")
	}
	if !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("Unexpected error: %v", err)
	}

	if err := CreateDirectoryIfNotExists(filepath.Join(file, "sub")); err == nil {
		t.Error("Expected error when parent is a regular file")
	}
}

func TestGetFallbackStorageDir(t *testing.T) {
	dir, err := GetFallbackStorageDir()
	if err != nil {
		t.Fatalf("Failed to get storage directory: %v", err)
	}

	if filepath.Base(dir) != AppStorageDirName {
		t.Errorf("Expected directory to end with %q, got: %s", AppStorageDirName, dir)
	}
}

func TestFileSize(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(file, make([]byte, 123), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	size, err := FileSize(file)
	if err != nil {
		t.Fatalf("FileSize returned error: %v", err)
	}
	if size != 123 {
		t.Errorf("Expected size 123, got %d", size)
	}

	if _, err := FileSize(dir); err == nil {
		t.Error("Expected error for directory")
	}
	if _, err := FileSize(filepath.Join(dir, "missing")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestOpenFileWithDefaultApp_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.jpg")

	err := OpenFileWithDefaultApp(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenCommand(t *testing.T) {
	tests := []struct {
		goos     string
		command  string
		lastArg  string
		hasError bool
	}{
		{OSDarwin, OpenCommand, "/tmp/a.jpg", false},
		{OSLinux, XDGOpenCommand, "/tmp/a.jpg", false},
		{OSWindows, CmdCommand, "/tmp/a.jpg", false},
		{OSAndroid, AndroidAM, ImageMIMEType, false},
		{"plan9", "", "", true},
	}

	for _, test := range tests {
		name, args, err := openCommand(test.goos, "/tmp/a.jpg")
		if test.hasError {
			if err == nil {
				t.Errorf("openCommand(%s) expected error", test.goos)
			}
			continue
		}
		if err != nil {
			t.Errorf("openCommand(%s) returned error: %v", test.goos, err)
			continue
		}
		if name != test.command {
			t.Errorf("openCommand(%s) command = %s, expected %s", test.goos, name, test.command)
		}
		if args[len(args)-1] != test.lastArg {
			t.Errorf("openCommand(%s) last arg = %s, expected %s", test.goos, args[len(args)-1], test.lastArg)
		}
	}
}
