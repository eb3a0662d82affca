package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/structpack"
)

func main() {
	var (
		format      = flag.String("format", "", "Format string, e.g. \"<h x I ?\"")
		packStr     = flag.String("pack", "", "Values to pack (comma-separated)")
		unpackStr   = flag.String("unpack", "", "Hex bytes to unpack")
		layout      = flag.Bool("layout", false, "Print the field layout and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log codec operations")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()
		structpack.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: -i needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*format); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *format == "" {
		fmt.Fprintln(os.Stderr, "Usage: structpack -format <fmt> -pack v1,v2,...")
		fmt.Fprintln(os.Stderr, "       structpack -format <fmt> -unpack <hex>")
		fmt.Fprintln(os.Stderr, "       structpack -format <fmt> -layout")
		fmt.Fprintln(os.Stderr, "       structpack -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*format, *packStr, *unpackStr, *layout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(format, packStr, unpackStr string, layoutOnly bool) error {
	fields, size, err := layoutOf(format)
	if err != nil {
		return err
	}

	fmt.Printf("Format: %s\n", format)
	fmt.Printf("Size: %d bytes, %d fields\n", size, len(fields))

	if layoutOnly || (packStr == "" && unpackStr == "") {
		fmt.Println()
		printLayout(fields)
		return nil
	}

	if packStr != "" {
		values, err := parseValues(packStr, fields)
		if err != nil {
			return err
		}
		buf, err := structpack.Pack(format, values...)
		if err != nil {
			return err
		}
		fmt.Printf("\nPacked: % x\n", buf)
	}

	if unpackStr != "" {
		data, err := hex.DecodeString(strings.Map(dropSpace, unpackStr))
		if err != nil {
			return fmt.Errorf("decode hex: %w", err)
		}
		values, err := structpack.UnpackValues(format, data)
		if err != nil {
			return err
		}
		fmt.Println()
		for i, v := range values {
			fmt.Printf("  [%d] offset %d: %v\n", i, fields[i].offset, v)
		}
	}

	return nil
}

// field is one resolved slot of a format string: where it lands in the
// packed record and how its bytes are laid out.
type field struct {
	offset int
	kind   structpack.Kind
	order  structpack.ByteOrder
}

func layoutOf(format string) ([]field, int, error) {
	dirs, err := structpack.Parse(format)
	if err != nil {
		return nil, 0, err
	}

	order := structpack.LittleEndian
	offset := 0
	var fields []field
	for _, d := range dirs {
		switch d.Op {
		case structpack.OpSetOrder:
			order = d.Order
		case structpack.OpPad:
			offset++
		case structpack.OpField:
			fields = append(fields, field{offset: offset, kind: d.Kind, order: order})
			offset += d.Kind.Width()
		}
	}
	return fields, offset, nil
}

func printLayout(fields []field) {
	fmt.Printf("  %-6s  %-3s  %-4s  %-5s  %s\n", "Offset", "Tag", "Kind", "Width", "Order")
	for _, f := range fields {
		fmt.Printf("  %6d  %-3c  %-4s  %5d  %s\n",
			f.offset, f.kind.Tag(), f.kind, f.kind.Width(), f.order)
	}
}

func parseValues(packStr string, fields []field) ([]structpack.Value, error) {
	parts := strings.Split(packStr, ",")
	if len(parts) != len(fields) {
		return nil, fmt.Errorf("format has %d fields, got %d values", len(fields), len(parts))
	}
	values := make([]structpack.Value, len(parts))
	for i, part := range parts {
		v, err := parseValue(strings.TrimSpace(part), fields[i].kind)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		values[i] = v
	}
	return values, nil
}

func parseValue(s string, kind structpack.Kind) (structpack.Value, error) {
	if kind.IsBool() {
		switch s {
		case "true", "1":
			return structpack.Bool(true), nil
		case "false", "0":
			return structpack.Bool(false), nil
		}
		return structpack.Value{}, fmt.Errorf("%q is not a bool", s)
	}

	if kind.Signed() {
		n, err := strconv.ParseInt(s, 0, 8*kind.Width())
		if err != nil {
			return structpack.Value{}, fmt.Errorf("%q does not fit %s", s, kind)
		}
		switch kind {
		case structpack.KindS8:
			return structpack.S8(int8(n)), nil
		case structpack.KindS16:
			return structpack.S16(int16(n)), nil
		case structpack.KindS32:
			return structpack.S32(int32(n)), nil
		default:
			return structpack.S64(n), nil
		}
	}

	u, err := strconv.ParseUint(s, 0, 8*kind.Width())
	if err != nil {
		return structpack.Value{}, fmt.Errorf("%q does not fit %s", s, kind)
	}
	switch kind {
	case structpack.KindU8:
		return structpack.U8(uint8(u)), nil
	case structpack.KindU16:
		return structpack.U16(uint16(u)), nil
	case structpack.KindU32:
		return structpack.U32(uint32(u)), nil
	default:
		return structpack.U64(u), nil
	}
}

func dropSpace(r rune) rune {
	if r == ' ' {
		return -1
	}
	return r
}
