// Command fermat reads a number from standard input, runs the Fermat
// primality test on it, and prints the verdict together with the elapsed
// wall-clock time.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	fermat "github.com/wgimson/fermat"
	"github.com/wgimson/fermat/big"
)

func main() {
	iterations := flag.Int("iterations", fermat.DefaultIterations, "number of Fermat trials to run")
	transcript := flag.Bool("transcript", false, "print the JSON trial transcript after the verdict")
	flag.Parse()

	fmt.Println("\nPlease enter number to be tested for primality: ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		fermat.Logger.Fatal("no input")
	}
	input := strings.TrimSpace(scanner.Text())
	n, ok := new(big.Int).SetString(input, 10)
	if !ok {
		fermat.Logger.Fatalf("not a base 10 integer: %q", input)
	}

	tester := fermat.Tester{Iterations: *iterations}

	start := time.Now()
	record, err := tester.TestRecorded(n)
	elapsed := time.Since(start)
	if err != nil {
		fermat.Logger.Fatalf("test failed: %v", err)
	}

	if record.ProbablyPrime {
		fmt.Printf("\n%v is prime.\n", n)
	} else {
		fmt.Printf("\n%v is composite.\n", n)
	}
	fmt.Printf("\nTotal run time for %v was %d milliseconds.\n\n", n, elapsed.Milliseconds())

	if *transcript {
		bts, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			fermat.Logger.Fatalf("marshaling transcript: %v", err)
		}
		fmt.Println(string(bts))
	}
}
