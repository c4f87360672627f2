// Command stringzillabench is a small CLI demonstrating and
// micro-benchmarking the stringzilla engine from the command line: find,
// edit distance, fingerprinting, and arg-sort over stdin lines.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	stringzilla "github.com/stringzilla-go/stringzilla"
	"github.com/stringzilla-go/stringzilla/fingerprint"
	"github.com/stringzilla-go/stringzilla/seq"
)

func main() {
	mode := flag.String("mode", "find", "Mode: find, distance, fingerprint, sort, caps")
	needle := flag.String("needle", "", "Needle for find mode")
	other := flag.String("b", "", "Second operand for distance mode")
	width := flag.Int("width", 8, "Fingerprint window width")
	k := flag.Int("k", 0, "If > 0, sort mode runs PartialArgSort(k) instead of ArgSort")
	flag.Parse()

	e := stringzilla.New()

	switch strings.ToLower(*mode) {
	case "find":
		handleFind(e, *needle)
	case "distance":
		handleDistance(e, *other)
	case "fingerprint":
		handleFingerprint(e, *width)
	case "sort":
		handleSort(e, *k)
	case "caps":
		fmt.Println(strings.Join(e.Capabilities(), ","))
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func handleFind(e *stringzilla.Engine, needle string) {
	if needle == "" {
		fmt.Fprintln(os.Stderr, "Usage: stringzillabench -mode find -needle S < haystack")
		os.Exit(2)
	}
	haystack, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("read stdin: %v", err)
	}
	start := time.Now()
	pos := e.Find(haystack, []byte(needle))
	fmt.Printf("pos=%d elapsed=%s\n", pos, time.Since(start))
}

func handleDistance(e *stringzilla.Engine, b string) {
	lines := readLines()
	if len(lines) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: stringzillabench -mode distance -b S < first_line")
		os.Exit(2)
	}
	start := time.Now()
	dist := e.Levenshtein(lines[0], b)
	fmt.Printf("distance=%d elapsed=%s\n", dist, time.Since(start))
}

func handleFingerprint(e *stringzilla.Engine, width int) {
	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("read stdin: %v", err)
	}
	dims := []fingerprint.Dim{
		fingerprint.RabinKarpDim(width),
		fingerprint.BuzHashDim(width, 1),
	}
	start := time.Now()
	sketch := e.Fingerprint(text, dims)
	fmt.Printf("min=%v count=%v elapsed=%s\n", sketch.Min, sketch.Count, time.Since(start))
}

func handleSort(e *stringzilla.Engine, k int) {
	lines := readLines()
	if len(lines) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: stringzillabench -mode sort < words.txt")
		os.Exit(2)
	}
	tape := seq.FromSlices(lines)
	start := time.Now()
	var order []uint32
	if k > 0 {
		order = e.PartialArgSort(tape, k)
	} else {
		order = e.ArgSort(tape)
	}
	elapsed := time.Since(start)
	for _, idx := range order {
		fmt.Println(lines[idx])
	}
	fmt.Fprintf(os.Stderr, "elapsed=%s\n", elapsed)
}

func readLines() []string {
	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}
