package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	alien "github.com/mattn/alienlang"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

const historyFile = ".alien_history"

var (
	expr     = flag.String("e", "", "evaluate expression and exit")
	selftest = flag.Bool("t", false, "run the bundled examples")
)

func repl() {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}

	for {
		line, err := ln.Prompt("> ")
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, liner.ErrPromptAborted) {
				log.Print(err)
			}
			fmt.Println()
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		ret, err := alien.Eval(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(ret)
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}
}

// run evaluates one expression per line. Blank lines and lines starting
// with '#' are skipped.
func run(r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ret, err := alien.Eval(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, n, err)
		}
		fmt.Println(ret)
	}
	return scanner.Err()
}

func main() {
	flag.Parse()

	if *selftest {
		failed, err := alien.SelfTest(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	if *expr != "" {
		ret, err := alien.Eval(strings.TrimSpace(*expr))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(ret)
		return
	}

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if flag.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			repl()
			return
		}
		if err := run(os.Stdin, "stdin"); err != nil {
			log.Fatal(err)
		}
		return
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := run(f, flag.Arg(0)); err != nil {
		log.Fatal(err)
	}
}
