package hashio

import (
	"bytes"
	"crypto/md5" //nolint
	"crypto/sha1"
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"io"
	"io/fs"
)

const size = 512

const (
	AlgMD5    = "md5"
	AlgSHA1   = "sha1"
	AlgSHA256 = "sha256"
)

type HashFunc func([]byte) ([]byte, error)

var (
	ErrHashFuncNotFound = errors.New("hash func not found")
	ErrUnknownAlg       = errors.New("unknown hash algorithm")
)

// Alg returns the hasher constructor by name. An empty name selects MD5
func Alg(name string) (func() hash.Hash, error) {
	switch name {
	case "", AlgMD5:
		return MD5(), nil
	case AlgSHA1:
		return SHA1(), nil
	case AlgSHA256:
		return SHA256(), nil
	default:
		return nil, fmt.Errorf("%w: %q, variants: md5, sha1, sha256", ErrUnknownAlg, name)
	}
}

// ReadAll reads in blocks by buf size and hashes
func ReadAll(r io.Reader, hasher hash.Hash) ([]byte, error) {
	buf := make([]byte, size)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			hasher.Write(buf[:n])
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, fmt.Errorf("read: %w", err)
		}
	}

	return hasher.Sum(nil), nil
}

// ReadFile takes the virtual file system interface fs.FS and fully reads the contents of the file,
// then applies a HashFunc to it
func ReadFile(fsys fs.FS, fileName string, hashFunc HashFunc) ([]byte, error) {
	if hashFunc == nil {
		return nil, ErrHashFuncNotFound
	}

	input, err := fs.ReadFile(fsys, fileName)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", fileName, err)
	}

	output, err := hashFunc(input)
	if err != nil {
		return nil, fmt.Errorf("call HashFunc: %w", err)
	}

	return output, nil
}

// SameContent reports whether the file in fsys has exactly the content b. A missing file is not an error
func SameContent(fsys fs.FS, fileName string, b []byte, hasher func() hash.Hash) (bool, error) {
	oldHash, err := ReadFile(fsys, fileName, HashSumFunc(hasher))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	newHash, err := ReadAll(bytes.NewReader(b), hasher())
	if err != nil {
		return false, err
	}

	return bytes.Equal(oldHash, newHash), nil
}

func HashSumFunc(hasher func() hash.Hash) HashFunc {
	return func(in []byte) ([]byte, error) {
		h := hasher()
		if _, err := h.Write(in); err != nil {
			return nil, fmt.Errorf("%T(hashfile.Hash) write: %w", h, err)
		}

		return h.Sum(nil), nil
	}
}

func MD5() func() hash.Hash {
	return func() hash.Hash {
		return md5.New()
	}
}

func SHA1() func() hash.Hash {
	return func() hash.Hash {
		return sha1.New()
	}
}

func SHA256() func() hash.Hash {
	return func() hash.Hash {
		return sha256.New()
	}
}
