package gen

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Write replaces the contents of dir with the output. The files are
// staged in a sibling directory first, so dir either keeps its previous
// contents or holds exactly the new files. Write refuses to touch a
// directory that holds anything it did not generate.
func (o *Output) Write(dir string) error {
	if err := checkOutputDir(dir); err != nil {
		return err
	}

	parent := filepath.Dir(dir)
	if err := os.MkdirAll(parent, 0700); err != nil {
		return err
	}

	stage, err := os.MkdirTemp(parent, "."+filepath.Base(dir)+"-")
	if err != nil {
		return fmt.Errorf(`failed to create staging directory for "%s": %w`, dir, err)
	}
	defer os.RemoveAll(stage)

	for _, f := range o.Files {
		if err := os.WriteFile(filepath.Join(stage, f.Name), f.Source, 0600); err != nil {
			return fmt.Errorf(`failed to write "%s": %w`, f.Name, err)
		}
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf(`failed to remove previous output "%s": %w`, dir, err)
	}

	if err := os.Rename(stage, dir); err != nil {
		return fmt.Errorf(`failed to move output into "%s": %w`, dir, err)
	}

	return nil
}

// checkOutputDir fails if dir exists and holds a subdirectory or a file
// without the generated code notice.
func checkOutputDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf(`failed to read output directory "%s": %w`, dir, err)
	}

	for _, e := range entries {
		path := filepath.Join(dir, e.Name())

		if e.IsDir() || !strings.HasSuffix(e.Name(), ".go") {
			return fmt.Errorf(`output directory "%s" contains "%s" which was not generated`, dir, e.Name())
		}

		generated, err := isGenerated(path)
		if err != nil {
			return err
		}

		if !generated {
			return fmt.Errorf(`output directory "%s" contains "%s" which was not generated`, dir, e.Name())
		}
	}

	return nil
}

func isGenerated(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadBytes('\n')
	if err != nil && len(line) == 0 {
		return false, nil
	}

	return bytes.Equal(bytes.TrimSpace(line), []byte("// "+GeneratedHeader)), nil
}
