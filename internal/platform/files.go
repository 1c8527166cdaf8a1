package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
	OSIOS     = "ios"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	AndroidAM      = "am"
)

// Command parameters
const (
	WindowsCmdFlag = "/c"
	ImageMIMEType  = "image/jpeg"
)

// AppStorageDirName is the directory used when the toolkit provides no storage root
const AppStorageDirName = "image-downloader"

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if dirPath == "" {
		return errors.New("directory path is empty")
	}

	info, err := os.Stat(dirPath)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("not a directory: %s", dirPath)
		}
		return nil
	case os.IsNotExist(err):
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	default:
		return err
	}
}

// GetFallbackStorageDir returns a per-user directory for application files
func GetFallbackStorageDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("failed to resolve storage directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppStorageDirName), nil
}

// FileSize returns the size of an existing regular file
func FileSize(filePath string) (int64, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("is a directory: %s", filePath)
	}
	return info.Size(), nil
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	if _, err := FileSize(filePath); err != nil {
		return fmt.Errorf("file does not exist: %v", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	name, args, err := openCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	return exec.Command(name, args...).Run()
}

// openCommand returns the command that opens filePath on goos
func openCommand(goos, filePath string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{filePath}, nil
	case OSWindows:
		return CmdCommand, []string{WindowsCmdFlag, StartCommand, "", filePath}, nil
	case OSLinux:
		return XDGOpenCommand, []string{filePath}, nil
	case OSAndroid:
		return AndroidAM, []string{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + filePath, "-t", ImageMIMEType}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
