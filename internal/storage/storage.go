// Package storage keeps uploaded files.
package storage

import (
	"io"
	"io/fs"
)

// Object is an open stored file.
type Object interface {
	io.ReadSeekCloser
	Stat() (fs.FileInfo, error)
}

// Storage is a flat blob store addressed by slash-separated names.
type Storage interface {
	Put(name string, r io.Reader) (int64, error)
	Open(name string) (Object, error)
	Exists(name string) (bool, error)
	Delete(name string) error
}
