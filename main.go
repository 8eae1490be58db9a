package main

import (
	"flag"
	"log"
	"os"
	"path"
	"strings"

	"github.com/golang-collections/collections/queue"
	bolt "go.etcd.io/bbolt"
)

var (
	projectPath      string
	resourceFilePath string
)

func parseFlags() {
	flag.StringVar(&projectPath, "project", ".",
		"Path to the project to generate text decals for.")
	flag.StringVar(&resourceFilePath, "out", "./stage.res",
		"Resource file to store generated atlases and decal meshes.")

	flag.Parse()
}

// FileTracker keeps a directory entry together with the path
// of the directory it was found in.
type FileTracker struct {
	EntryPath string
	Entry     os.DirEntry
}

func main() {
	parseFlags()

	// Generated files land next to their descriptors, so the
	// project has to exist on disk before anything is produced.
	if info, err := os.Stat(projectPath); err != nil || !info.IsDir() {
		log.Fatalf("project directory '%s' not found: save the project before generating decals",
			projectPath)
	}

	// Open the resource file.
	resourceFile, err := bolt.Open(resourceFilePath, 0666, nil)
	handleError(err)
	defer resourceFile.Close()

	entries, err := os.ReadDir(projectPath)
	handleError(err)

	traverseQueue := queue.New()

	if len(entries) <= 0 {
		return
	}

	for _, entry := range entries {
		traverseQueue.Enqueue(FileTracker{
			EntryPath: projectPath,
			Entry:     entry,
		})
	}

	for traverseQueue.Len() > 0 {
		fsEntry := traverseQueue.Dequeue().(FileTracker)

		if fsEntry.Entry.IsDir() {
			entries, err = os.ReadDir(path.Join(fsEntry.EntryPath, fsEntry.Entry.Name()))
			handleError(err)

			for _, entry := range entries {
				traverseQueue.Enqueue(FileTracker{
					EntryPath: path.Join(fsEntry.EntryPath, fsEntry.Entry.Name()),
					Entry:     entry,
				})
			}

			continue
		}

		if !strings.HasSuffix(fsEntry.Entry.Name(), ".decal.yml") {
			continue
		}

		data, err := os.ReadFile(path.Join(fsEntry.EntryPath, fsEntry.Entry.Name()))
		handleError(err)
		decalMetas, err := ReadDecalsData(data)
		handleError(err)

		for _, decalMeta := range decalMetas {
			// Bad input is reported and skipped; the user fixes
			// the descriptor and reruns the packer.
			if err := decalMeta.Validate(); err != nil {
				log.Printf("skipping decal: %v", err)
				continue
			}

			result, err := decalMeta.ToDecalData(resourceFile, fsEntry.EntryPath)
			handleError(err)

			err = resourceFile.Update(func(tx *bolt.Tx) error {
				atlases, err := tx.CreateBucketIfNotExists([]byte("atlases"))

				if err != nil {
					return err
				}

				err = atlases.Put([]byte(decalMeta.Name), result.AtlasBytes)

				if err != nil {
					return err
				}

				decals, err := tx.CreateBucketIfNotExists([]byte("decals"))

				if err != nil {
					return err
				}

				return decals.Put([]byte(decalMeta.Name), result.MeshBytes)
			})
			handleError(err)
		}
	}
}

func handleError(err error) {
	if err != nil {
		panic(err)
	}
}
