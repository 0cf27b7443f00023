package config

import (
	"io"
	"os"

	"github.com/google/uuid"
)

// Dependencies contains injectable dependencies for testing and customization.
// All fields are optional and will use default implementations if nil.
type Dependencies struct {
	Getenv       GetenvFunc
	ReadFile     ReadFileFunc
	Stat         StatFunc
	WriteFile    WriteFileFunc
	Stdout       StdoutFunc
	NewSessionID SessionIDFunc
}

// GetenvFunc looks up an environment variable, returning "" when unset.
type GetenvFunc func(key string) string

// ReadFileFunc reads a whole file.
type ReadFileFunc func(path string) ([]byte, error)

// StatFunc describes a file without reading it.
type StatFunc func(path string) (os.FileInfo, error)

// WriteFileFunc writes a whole file, creating or truncating it.
type WriteFileFunc func(path string, data []byte, perm os.FileMode) error

// StdoutFunc is a function that returns a writer for stdout.
// It returns an io.Writer to allow for mock implementations.
type StdoutFunc func() io.Writer

// SessionIDFunc generates a new session id.
type SessionIDFunc func() string

// GetGetenvFunc returns the env lookup from dependencies, or os.Getenv.
func GetGetenvFunc(deps *Dependencies) GetenvFunc {
	if deps != nil && deps.Getenv != nil {
		return deps.Getenv
	}
	return os.Getenv
}

// GetReadFileFunc returns the file reader from dependencies, or os.ReadFile.
func GetReadFileFunc(deps *Dependencies) ReadFileFunc {
	if deps != nil && deps.ReadFile != nil {
		return deps.ReadFile
	}
	return os.ReadFile
}

// GetStatFunc returns the file stat from dependencies, or os.Stat.
func GetStatFunc(deps *Dependencies) StatFunc {
	if deps != nil && deps.Stat != nil {
		return deps.Stat
	}
	return os.Stat
}

// GetWriteFileFunc returns the file writer from dependencies, or os.WriteFile.
func GetWriteFileFunc(deps *Dependencies) WriteFileFunc {
	if deps != nil && deps.WriteFile != nil {
		return deps.WriteFile
	}
	return os.WriteFile
}

// GetStdoutFunc returns the stdout function from dependencies, or a default implementation.
// If deps is nil or deps.Stdout is nil, returns a function that uses os.Stdout.
func GetStdoutFunc(deps *Dependencies) StdoutFunc {
	if deps != nil && deps.Stdout != nil {
		return deps.Stdout
	}
	return func() io.Writer {
		return os.Stdout
	}
}

// GetSessionIDFunc returns the session id generator from dependencies,
// or one producing random UUIDs.
func GetSessionIDFunc(deps *Dependencies) SessionIDFunc {
	if deps != nil && deps.NewSessionID != nil {
		return deps.NewSessionID
	}
	return func() string {
		return uuid.New().String()
	}
}
