package receipt

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LocalStorage", func() {
	var (
		tmpDir  string
		storage Storage
	)

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
		var err error
		storage, err = NewLocalStorage(tmpDir)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Open", func() {
		var (
			path string
			data []byte
			err  error
		)

		JustBeforeEach(func() {
			var rc io.ReadCloser
			rc, err = storage.Open(path)
			if err == nil {
				defer rc.Close()
				data, err = io.ReadAll(rc)
			}
		})

		When("file exists", func() {
			BeforeEach(func() {
				path = "input1.txt"
				Expect(os.WriteFile(filepath.Join(tmpDir, path), []byte("1 book at 12.49\n"), 0644)).To(Succeed())
			})

			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})

			It("should return the file contents", func() {
				Expect(string(data)).To(Equal("1 book at 12.49\n"))
			})
		})

		When("file does not exist", func() {
			BeforeEach(func() {
				path = "nonexistent.txt"
			})

			It("returns the error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("opening file"))
			})

			It("should keep the not-exist cause", func() {
				Expect(errors.Is(err, fs.ErrNotExist)).To(BeTrue())
			})
		})

		When("the path is absolute", func() {
			BeforeEach(func() {
				path = filepath.Join(GinkgoT().TempDir(), "elsewhere.txt")
				Expect(os.WriteFile(path, []byte("absolute"), 0644)).To(Succeed())
			})

			It("should ignore the base path", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(string(data)).To(Equal("absolute"))
			})
		})
	})

	Describe("Create", func() {
		var (
			path string
			err  error
		)

		JustBeforeEach(func() {
			var wc io.WriteCloser
			wc, err = storage.Create(path)
			if err == nil {
				_, err = wc.Write([]byte("new"))
				Expect(wc.Close()).To(Succeed())
			}
		})

		When("the file does not exist", func() {
			BeforeEach(func() {
				path = "output-input1.txt"
			})

			It("should create it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(filepath.Join(tmpDir, path)).To(BeAnExistingFile())
			})
		})

		When("the file already exists", func() {
			BeforeEach(func() {
				path = "output-input1.txt"
				Expect(os.WriteFile(filepath.Join(tmpDir, path), []byte("old content that is longer"), 0644)).To(Succeed())
			})

			It("should overwrite it", func() {
				data, readErr := os.ReadFile(filepath.Join(tmpDir, path))
				Expect(readErr).NotTo(HaveOccurred())
				Expect(string(data)).To(Equal("new"))
			})
		})

		When("the directory does not exist", func() {
			BeforeEach(func() {
				path = filepath.Join("missing", "output-input1.txt")
			})

			It("returns the error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("creating file"))
			})
		})
	})

	Describe("Delete", func() {
		var (
			path string
			err  error
		)

		JustBeforeEach(func() {
			err = storage.Delete(path)
		})

		When("file exists", func() {
			BeforeEach(func() {
				path = "output-input1.txt"
				Expect(os.WriteFile(filepath.Join(tmpDir, path), []byte("partial"), 0644)).To(Succeed())
			})

			It("should remove the file from disk", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(filepath.Join(tmpDir, path)).NotTo(BeAnExistingFile())
			})
		})

		When("file does not exist", func() {
			BeforeEach(func() {
				path = "nonexistent.txt"
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(ContainSubstring("deleting file")))
			})
		})
	})

	Describe("NewLocalStorage", func() {
		var (
			storagePath string
			err         error
		)

		JustBeforeEach(func() {
			_, err = NewLocalStorage(storagePath)
		})

		When("the base path is empty", func() {
			BeforeEach(func() {
				storagePath = ""
			})

			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("directory does not exist", func() {
			BeforeEach(func() {
				storagePath = filepath.Join(GinkgoT().TempDir(), "receipts")
			})

			It("returns the error", func() {
				Expect(err).To(HaveOccurred())
				Expect(errors.Is(err, fs.ErrNotExist)).To(BeTrue())
			})
		})

		When("the path is a file", func() {
			BeforeEach(func() {
				storagePath = filepath.Join(GinkgoT().TempDir(), "receipt.txt")
				Expect(os.WriteFile(storagePath, nil, 0644)).To(Succeed())
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(ContainSubstring("not a directory")))
			})
		})
	})
})
