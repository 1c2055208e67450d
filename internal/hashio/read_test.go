package hashio

import (
	"bytes"
	"crypto/sha1"
	"errors"
	"fmt"
	"hash"
	"io"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type fakeReader struct{}

func (f *fakeReader) Read(_ []byte) (n int, err error) { return 0, errors.New("io error") }

func TestReadAll(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name        string
		err         error
		r           io.Reader
		hasherFunc  func() hash.Hash
		expectedStr string
		sourceStr   string
	}{
		{
			name:        "test_read_all_md5",
			hasherFunc:  MD5(),
			sourceStr:   "hello world",
			expectedStr: "5eb63bbbe01eeed093cb22bb8f5acdc3",
		},
		{
			name:        "test_read_all_sha1",
			hasherFunc:  SHA1(),
			sourceStr:   "hello world",
			expectedStr: "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed",
		},
		{
			name:        "test_read_all_sha1",
			hasherFunc:  SHA1(),
			sourceStr:   "hello world",
			expectedStr: "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed",
			r:           &fakeReader{},
			err:         errors.New("io error"),
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(
			tc.name, func(t *testing.T) {
				t.Parallel()
				var r io.Reader
				if tc.r != nil {
					r = tc.r
				} else {
					r = bytes.NewReader([]byte(tc.sourceStr))
				}
				h := tc.hasherFunc()
				got, err := ReadAll(r, h)
				if tc.err != nil && err == nil {
					t.Fatalf("read all: %v", err)
				}

				if err != nil {
					if !errors.Is(err, tc.err) {
						if strings.Contains(err.Error(), tc.err.Error()) {
							return
						}
						diff := cmp.Diff(tc.err, err, cmpopts.EquateErrors())
						t.Errorf("mismatch (-want, +got):\n%s", diff)
					}
					return
				}

				if strings.Compare(tc.expectedStr, fmt.Sprintf("%x", got)) != 0 {
					diff := cmp.Diff(tc.expectedStr, fmt.Sprintf("%x", got))
					t.Errorf("mismatch (-want, +got):\n%s", diff)
				}
			},
		)
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name        string
		err         error
		fileName    string
		hashFunc    HashFunc
		expectedStr string
		sourceStr   string
	}{
		{
			name:        "test_read_file_md5",
			fileName:    "stat",
			hashFunc:    HashSumFunc(MD5()),
			sourceStr:   "hello world",
			expectedStr: "5eb63bbbe01eeed093cb22bb8f5acdc3",
		},
		{
			name:        "test_read_file_sha256",
			fileName:    "stat",
			hashFunc:    HashSumFunc(SHA256()),
			sourceStr:   "hello world",
			expectedStr: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		},
		{
			name:     "test_read_file_missing",
			fileName: "missing",
			hashFunc: HashSumFunc(MD5()),
			err:      fs.ErrNotExist,
		},
		{
			name:     "test_read_file_without_hash_func",
			fileName: "stat",
			err:      ErrHashFuncNotFound,
		},
		{
			name:     "test_read_file_sha1_with_helper",
			fileName: "stat",
			hashFunc: HashSumFunc(
				func() hash.Hash {
					return sha1.New()
				},
			),
			sourceStr:   "hello world",
			expectedStr: "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed",
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(
			tc.name, func(t *testing.T) {
				t.Parallel()
				fsys := fstest.MapFS{
					"stat": &fstest.MapFile{
						Data:    []byte(tc.sourceStr),
						Mode:    0o600,
						ModTime: time.Time{},
					},
				}

				got, err := ReadFile(fsys, tc.fileName, tc.hashFunc)
				if tc.err != nil && err == nil {
					t.Fatalf("read all: %v", err)
				}

				if err != nil {
					if !errors.Is(err, tc.err) {
						if strings.Contains(err.Error(), tc.err.Error()) {
							return
						}
						diff := cmp.Diff(tc.err, err, cmpopts.EquateErrors())
						t.Errorf("mismatch (-want, +got):\n%s", diff)
					}
					return
				}

				if strings.Compare(tc.expectedStr, fmt.Sprintf("%x", got)) != 0 {
					diff := cmp.Diff(tc.expectedStr, fmt.Sprintf("%x", got))
					t.Errorf("mismatch (-want, +got):\n%s", diff)
				}
			},
		)
	}
}

func TestAlg(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		alg         string
		err         error
		expectedStr string
	}{
		{name: "test_alg_default", alg: "", expectedStr: "5eb63bbbe01eeed093cb22bb8f5acdc3"},
		{name: "test_alg_md5", alg: AlgMD5, expectedStr: "5eb63bbbe01eeed093cb22bb8f5acdc3"},
		{name: "test_alg_sha1", alg: AlgSHA1, expectedStr: "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed"},
		{
			name:        "test_alg_sha256",
			alg:         AlgSHA256,
			expectedStr: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		},
		{name: "test_alg_unknown", alg: "crc32", err: ErrUnknownAlg},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			hasher, err := Alg(tc.alg)
			if diff := cmp.Diff(tc.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("mismatch (-want, +got):\n%s", diff)
			}

			if err != nil {
				return
			}

			got, err := ReadAll(strings.NewReader("hello world"), hasher())
			if err != nil {
				t.Fatalf("read all: %v", err)
			}

			if diff := cmp.Diff(tc.expectedStr, fmt.Sprintf("%x", got)); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSameContent(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"fr.json": &fstest.MapFile{Data: []byte(`{"Names": {}}`)},
	}

	testCases := []struct {
		name     string
		fileName string
		content  string
		expected bool
	}{
		{name: "test_same", fileName: "fr.json", content: `{"Names": {}}`, expected: true},
		{name: "test_changed", fileName: "fr.json", content: `{"Names": {"EUR": ["€", "euro"]}}`},
		{name: "test_missing_file", fileName: "de.json", content: `{"Names": {}}`},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := SameContent(fsys, tc.fileName, []byte(tc.content), SHA1())
			if err != nil {
				t.Fatalf("same content: %v", err)
			}

			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}
