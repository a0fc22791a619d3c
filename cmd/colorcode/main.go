// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/unixdj/colorcode"
	"github.com/unixdj/colorcode/config"
	"github.com/unixdj/colorcode/svg"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"go.uber.org/zap"
)

var g = struct {
	qr, block, steg string        // messages
	json            string        // configuration file
	decode          string        // SVG file to decode
	fn              string        // output filename
	format          int           // output file format
	rows, cols      int           // dimension hints
	scale           int           // module size
	box             bool          // SVG bounding box
	fold            bool          // fold input to ASCII
	verbose         bool          // debug logging
	override        colorcode.Tag // decode tag override
	force           bool          // override beats rect tags
	log             *zap.Logger   // logger
}{
	scale: svg.DefaultModuleSize,
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "Colour code generator\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), `
Encodes up to three messages into one grid: a QR code (-q), RGB blocks
(-b) and channel LSB steganography (-s), or the messages in a JSON file
(-j).  With -d, decodes the block and steganography messages from an
SVG file written by this program.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func light() { g.override = colorcode.Light }
func dark()  { g.override = colorcode.Dark }

var formats = []string{"svg", "png", "ppm", "term"}

var encoders = [...]func(*colorcode.Layer, io.Writer) error{
	func(l *colorcode.Layer, w io.Writer) error {
		return svg.Encode(w, l.Grid(), l.Tag(),
			&svg.Options{ModuleSize: g.scale, BoundingBox: g.box})
	},
	func(l *colorcode.Layer, w io.Writer) error {
		return l.Grid().EncodePNG(w, g.scale)
	},
	func(l *colorcode.Layer, w io.Writer) error {
		return l.Grid().EncodePPM(w, g.scale)
	},
	terminal,
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(&g.qr, 'q', "QR code message", "text")
	getopt.Flag(&g.block, 'b', "block code message", "text")
	getopt.Flag(&g.steg, 's', "steganography message", "text")
	getopt.Flag(&g.json, 'j', `JSON file with "qr", "block" and `+
		`"steg" messages; overrides -q, -b and -s`, "file")
	getopt.Flag(&g.decode, 'd', "decode messages from an SVG file", "file")
	getopt.Flag(opt(light), 'L', "decode: treat untagged rects as "+
		"never complemented").SetFlag()
	getopt.Flag(opt(dark), 'D', "decode: treat untagged rects as "+
		"complemented").SetFlag()
	getopt.Flag(&g.force, 'f', "decode: -L or -D applies to all rects")
	getopt.Flag(&g.rows, 'r', "rows of a block or steganography grid", "rows")
	getopt.Flag(&g.cols, 'c', "columns of a block or steganography grid", "cols")
	getopt.Flag(&g.scale, 'm', "module size in pixels or SVG units", "size")
	getopt.Flag(&g.box, 'x', "draw a bounding box (svg)")
	getopt.Flag(&g.fold, 'a', "fold accented letters to ASCII")
	getopt.Flag(&g.verbose, 'v', "verbose logging")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for standard output`,
		"file")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+`; if no -o is given and `+
		`standard output is a TTY, default is term, otherwise svg`, "type")

	getopt.Parse()
	if len(getopt.Args()) != 0 {
		usage()
	}
	if g.scale < 1 {
		fmt.Fprintln(os.Stderr, "-m must be positive")
		usage()
	}
	if g.rows < 0 || g.cols < 0 {
		fmt.Fprintln(os.Stderr, "-r and -c must not be negative")
		usage()
	}
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "term"
		} else {
			*ff = "svg"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
}

func newLogger() *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if g.verbose {
		l, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		cfg.DisableStacktrace = true
		cfg.DisableCaller = true
		l, err = cfg.Build()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	return l
}

func main() {
	parseFlags()
	g.log = newLogger()
	defer g.log.Sync() //nolint:errcheck
	colorcode.SetLogger(g.log)

	if g.decode != "" {
		decode(g.decode)
		return
	}

	m, err := messages()
	if err != nil {
		g.log.Fatal("configuration", zap.Error(err))
	}
	l, out, err := colorcode.Assemble(m)
	if err != nil {
		g.log.Fatal("encode", zap.Error(err))
	}
	for _, o := range out {
		if o.Status == colorcode.CapacitySkipped {
			g.log.Warn(o.String())
		}
	}
	write(l)
}

// messages returns the messages from -j or from -q, -b and -s.
func messages() (*colorcode.Messages, error) {
	var m *colorcode.Messages
	if g.json != "" {
		var err error
		if m, err = config.LoadFile(g.json); err != nil {
			return nil, err
		}
	} else {
		m = &colorcode.Messages{}
		if getopt.IsSet('q') {
			m.QR = &g.qr
		}
		if getopt.IsSet('b') {
			m.Block = &g.block
		}
		if getopt.IsSet('s') {
			m.Steg = &g.steg
		}
	}
	if getopt.IsSet('r') {
		m.Rows = g.rows
	}
	if getopt.IsSet('c') {
		m.Cols = g.cols
	}
	if g.fold {
		for _, p := range []*string{m.QR, m.Block, m.Steg} {
			if p != nil {
				*p = foldASCII(*p)
			}
		}
	}
	return m, nil
}

func write(l *colorcode.Layer) {
	w := os.Stdout
	if g.fn != "" {
		var err error
		if w, err = os.Create(g.fn); err != nil {
			g.log.Fatal("create", zap.String("path", g.fn), zap.Error(err))
		}
	}
	err := encoders[g.format](l, w)
	if g.fn != "" {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		g.log.Fatal("write", zap.String("format", formats[g.format]),
			zap.Error(err))
	}
	if g.fn != "" {
		g.log.Info("written", zap.String("path", g.fn),
			zap.Stringer("layer", l.Kind()),
			zap.Int("rows", l.Grid().Rows()), zap.Int("cols", l.Grid().Cols()))
	}
}

func decode(fn string) {
	f, err := os.Open(fn)
	if err != nil {
		g.log.Fatal("open", zap.String("path", fn), zap.Error(err))
	}
	s, err := svg.Decode(f)
	f.Close()
	if err != nil {
		g.log.Fatal("decode", zap.String("path", fn), zap.Error(err))
	}
	m := colorcode.Decode(s, &colorcode.DecodeOptions{
		Override:      g.override,
		ForceOverride: g.force,
	})
	fmt.Printf("Block message:\n\n%s\n\nSteganography message:\n\n%s\n",
		strings.TrimRight(m.Block, "\x00"), m.Steg)
}
