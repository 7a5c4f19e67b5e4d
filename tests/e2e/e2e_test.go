package e2e

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	expect "github.com/Netflix/go-expect"
)

var (
	update     = flag.Bool("update", false, "update golden files")
	binaryPath string
)

func TestMain(m *testing.M) {
	flag.Parse()

	// Skip if E2E_TEST is not set
	if os.Getenv("E2E_TEST") == "" {
		fmt.Println("Skipping E2E tests. Set E2E_TEST=1 to run them.")
		os.Exit(0)
	}

	fmt.Println("Building valuefmt binary...")
	cmd := exec.Command("go", "build", "-o", "valuefmt-test", "../../.")
	if output, err := cmd.CombinedOutput(); err != nil {
		fmt.Printf("Failed to build binary: %v\n%s\n", err, output)
		os.Exit(1)
	}

	var err error
	binaryPath, err = filepath.Abs("valuefmt-test")
	if err != nil {
		fmt.Printf("Failed to get absolute path: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	os.Remove("valuefmt-test")
	os.Exit(code)
}

func runBinary(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("valuefmt %s failed: %v\n%s", strings.Join(args, " "), err, stderr.String())
	}
	return stdout.String()
}

func compareGolden(t *testing.T, name, got string) {
	t.Helper()

	goldenPath := filepath.Join("testdata", "golden", name)
	if *update {
		if err := os.WriteFile(goldenPath, []byte(got), 0644); err != nil {
			t.Fatalf("Failed to update golden file: %v", err)
		}
		return
	}

	want, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("Failed to read golden file %s: %v", goldenPath, err)
	}
	if got != string(want) {
		t.Errorf("Output mismatch for %s\n--- want ---\n%s\n--- got ---\n%s", name, want, got)
	}
}

func TestFormat(t *testing.T) {
	got := runBinary(t, ".", "format", "test", "", "value: test")
	want := "value: test\nempty\nvalue: value: test\n"
	if got != want {
		t.Errorf("format output = %q, want %q", got, want)
	}
}

func TestDescribe(t *testing.T) {
	got := runBinary(t, ".", "describe", "--", "", "-7")
	if got != ": -7\n" {
		t.Errorf("describe output = %q, want %q", got, ": -7\n")
	}
}

func TestRenderDev(t *testing.T) {
	compareGolden(t, "render-dev.txt", runBinary(t, "testdata", "render", "-c", "dev"))
}

func TestRenderProd(t *testing.T) {
	compareGolden(t, "render-prod.txt", runBinary(t, "testdata", "render", "-c", "prod"))
}

func TestDescribeInteractive(t *testing.T) {
	console, err := expect.NewConsole(expect.WithStdout(os.Stdout), expect.WithDefaultTimeout(30*time.Second))
	if err != nil {
		t.Fatalf("Failed to create console: %v", err)
	}
	defer console.Close()

	// No arguments triggers the name and value prompts
	cmd := exec.Command(binaryPath, "describe")
	cmd.Stdin = console.Tty()
	cmd.Stdout = console.Tty()
	cmd.Stderr = console.Tty()

	done := make(chan error, 1)
	go func() {
		done <- cmd.Run()
	}()

	if _, err := console.ExpectString("Name"); err != nil {
		t.Fatalf("Failed to see name prompt: %v", err)
	}
	console.SendLine("answer")

	if _, err := console.ExpectString("Value"); err != nil {
		t.Fatalf("Failed to see value prompt: %v", err)
	}
	console.SendLine("42")

	if _, err := console.ExpectString("answer: 42"); err != nil {
		t.Fatalf("Failed to see description: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Describe command failed: %v", err)
		}
	case <-time.After(30 * time.Second):
		t.Fatal("Command timed out")
	}
}

func TestRenderInteractiveContextSelection(t *testing.T) {
	console, err := expect.NewConsole(expect.WithStdout(os.Stdout), expect.WithDefaultTimeout(30*time.Second))
	if err != nil {
		t.Fatalf("Failed to create console: %v", err)
	}
	defer console.Close()

	// Without --context the contexts declared in the project file are offered
	cmd := exec.Command(binaryPath, "render", "--no-comments")
	cmd.Dir = "testdata"
	cmd.Stdin = console.Tty()
	cmd.Stdout = console.Tty()
	cmd.Stderr = console.Tty()

	done := make(chan error, 1)
	go func() {
		done <- cmd.Run()
	}()

	if _, err := console.ExpectString("Select contexts"); err != nil {
		t.Fatalf("Failed to see context prompt: %v", err)
	}

	// Select the first context (dev) with space, then press enter
	console.Send(" ")
	time.Sleep(100 * time.Millisecond)
	console.Send("\r")

	if _, err := console.ExpectString("TIMEOUT: 30"); err != nil {
		t.Fatalf("Failed to see rendered dev values: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Render command failed: %v", err)
		}
	case <-time.After(30 * time.Second):
		t.Fatal("Command timed out")
	}
}
