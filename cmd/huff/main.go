package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/atiedebee/hf1/internal/huffman"
)

type Mode uint8

const (
	CompressMode Mode = iota
	DecompressMode
)

var errUsage = errors.New("usage: huff [-v] [-p] c|compress|d|decompress <input> <output>")

func parseMode(s string) (Mode, error) {
	switch s {
	case "c", "compress":
		return CompressMode, nil
	case "d", "decompress":
		return DecompressMode, nil
	}
	return 0, errors.Errorf("unknown mode %q, use c or d", s)
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := run(os.Args[1:], os.Stdin, os.Stdout, log); err != nil {
		log.Errorf("huff: %v", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, log *logrus.Logger) error {
	fs := flag.NewFlagSet("huff", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	verbose := fs.Bool("v", false, "log stage sizes")
	doPrintTree := fs.Bool("p", false, "print the prefix tree")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(errUsage, err.Error())
	}
	if fs.NArg() != 3 {
		return errUsage
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	mode, err := parseMode(fs.Arg(0))
	if err != nil {
		return err
	}
	finName, foutName := fs.Arg(1), fs.Arg(2)

	// With the output on stdout the tree goes to the log stream instead.
	treeOut := stdout
	if foutName == "-" {
		treeOut = log.Out
	}

	in, err := readInput(finName, stdin)
	if err != nil {
		return err
	}

	codec := huffman.NewCodec(huffman.WithLogger(log))
	var out []byte
	switch mode {
	case CompressMode:
		var st huffman.Stats
		out, st, err = codec.CompressStats(in)
		if err != nil {
			return errors.Wrapf(err, "compress %s", finName)
		}
		if *doPrintTree {
			freq := huffman.CountFrequencies(in)
			if err := printTree(treeOut, &freq); err != nil {
				return err
			}
		}
		log.WithFields(logrus.Fields{
			"input":  st.InputSize,
			"output": st.OutputSize,
			"ratio":  fmt.Sprintf("%.3f", st.Ratio()),
		}).Infof("compressed %s to %s", finName, foutName)

	case DecompressMode:
		out, err = codec.Decompress(in)
		if err != nil {
			return errors.Wrapf(err, "decompress %s", finName)
		}
		if *doPrintTree {
			hdr, err := huffman.ReadHeader(bytes.NewReader(in))
			if err != nil {
				return err
			}
			if err := printTree(treeOut, &hdr.Freq); err != nil {
				return err
			}
		}
		log.WithFields(logrus.Fields{
			"input":  len(in),
			"output": len(out),
		}).Infof("decompressed %s to %s", finName, foutName)
	}

	return writeOutput(foutName, stdout, out)
}

func printTree(w io.Writer, freq *huffman.FrequencyTable) error {
	tree, err := huffman.BuildTree(freq)
	if err != nil {
		return err
	}
	return errors.Wrap(tree.Fprint(w), "print tree")
}

// readInput loads the whole input; "-" means stdin.
func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		return data, errors.Wrap(err, "read stdin")
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	data, err := io.ReadAll(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return data, nil
}

// writeOutput writes data to name, or to stdout for "-". A file left
// incomplete by a failed write is removed.
func writeOutput(name string, stdout io.Writer, data []byte) (err error) {
	if name == "-" {
		_, err := stdout.Write(data)
		return errors.Wrap(err, "write stdout")
	}

	f, err := os.Create(name)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", name)
		}
		if err != nil {
			os.Remove(name)
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	return errors.Wrapf(w.Flush(), "write %s", name)
}
