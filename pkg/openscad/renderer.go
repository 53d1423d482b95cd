package openscad

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// Binary is the executable looked up in PATH
const Binary = "openscad"

// ErrNotInstalled is returned when the openscad executable cannot be found
var ErrNotInstalled = errors.New("openscad not found in PATH, install it from https://openscad.org/")

// dependencyPattern matches `use <file>` and `include <file>` statements
var dependencyPattern = regexp.MustCompile(`^\s*(?:use|include)\s*<([^>]+)>`)

// Renderer turns OpenSCAD sources into STL meshes
type Renderer struct {
	workDir string
}

// NewRenderer creates a renderer resolving relative paths against workDir
func NewRenderer(workDir string) *Renderer {
	return &Renderer{workDir: workDir}
}

// abs resolves path against workDir. The result is absolute because the
// openscad process runs inside workDir.
func (r *Renderer) abs(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.workDir, path)
	}
	if p, err := filepath.Abs(path); err == nil {
		return p
	}
	return path
}

// RenderToSTL renders scadFile into outputFile. The process is killed
// when ctx is cancelled.
func (r *Renderer) RenderToSTL(ctx context.Context, scadFile, outputFile string) error {
	if _, err := exec.LookPath(Binary); err != nil {
		return ErrNotInstalled
	}

	cmd := exec.CommandContext(ctx, Binary, "-o", outputFile, r.abs(scadFile))
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var msg strings.Builder
		if stderr.Len() > 0 {
			msg.WriteString("\nstderr: ")
			msg.WriteString(stderr.String())
		}
		if stdout.Len() > 0 {
			msg.WriteString("\nstdout: ")
			msg.WriteString(stdout.String())
		}
		return fmt.Errorf("failed to render %s: %w%s", scadFile, err, msg.String())
	}

	return nil
}

// ResolveDependencies returns scadFile followed by every file it pulls in
// through use/include, transitively, as absolute paths
func (r *Renderer) ResolveDependencies(scadFile string) ([]string, error) {
	visited := make(map[string]bool)
	var deps []string

	var walk func(string) error
	walk = func(file string) error {
		if visited[file] {
			return nil
		}
		visited[file] = true
		deps = append(deps, file)

		direct, err := r.parseDependencies(file)
		if err != nil {
			return err
		}
		for _, dep := range direct {
			if err := walk(dep); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(r.abs(scadFile)); err != nil {
		return nil, err
	}
	return deps, nil
}

func (r *Renderer) parseDependencies(scadFile string) ([]string, error) {
	file, err := os.Open(scadFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", scadFile, err)
	}
	defer file.Close()

	var deps []string
	scadDir := filepath.Dir(scadFile)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		if m := dependencyPattern.FindStringSubmatch(line); m != nil {
			deps = append(deps, r.resolveDepPath(m[1], scadDir))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", scadFile, err)
	}
	return deps, nil
}

// resolveDepPath resolves dep against the including file's directory,
// falling back to the work directory for library-style paths
func (r *Renderer) resolveDepPath(dep, currentDir string) string {
	local := filepath.Join(currentDir, dep)
	if strings.HasPrefix(dep, "./") || strings.HasPrefix(dep, "../") {
		return filepath.Clean(local)
	}
	if _, err := os.Stat(local); err == nil {
		return filepath.Clean(local)
	}
	return filepath.Clean(filepath.Join(r.workDir, dep))
}
