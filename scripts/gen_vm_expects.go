// Command gen_vm_expects writes free function forms of a test case builder's
// expect and with methods, so that test tables may pass them around as values.
//
// Usage: go run scripts/gen_vm_expects.go [-type T] [-infix I] -- [in.go [out.go]]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

const scriptPath = "scripts/gen_vm_expects.go"

// generator holds the builder type being wrapped and the infix spliced into
// each wrapper's name, e.g. expectAcc becomes expectVMAcc.
type generator struct {
	caseType string
	infix    string
	source   string
	args     []string
	method   *regexp.Regexp
}

func newGenerator(caseType, infix, source string, args []string) *generator {
	return &generator{
		caseType: caseType,
		infix:    infix,
		source:   source,
		args:     args,
		method: regexp.MustCompile(`^func \(\w+ ` + regexp.QuoteMeta(caseType) +
			`\) (expect|with)(\w+)\((.+?)\) ` + regexp.QuoteMeta(caseType) + ` \{`),
	}
}

// wrapper is one builder method with at least one parameter.
type wrapper struct {
	prefix string // expect or with
	name   string
	params string
	pass   []string
}

func (g *generator) parse(line string) (w wrapper, ok bool) {
	match := g.method.FindStringSubmatch(line)
	if match == nil {
		return w, false
	}
	w.prefix, w.name, w.params = match[1], match[2], match[3]
	for _, param := range strings.Split(w.params, ",") {
		fields := strings.Fields(param)
		arg := fields[0]
		if len(fields) > 1 && strings.HasPrefix(fields[1], "...") {
			arg += "..."
		}
		w.pass = append(w.pass, arg)
	}
	return w, true
}

func (g *generator) header(out io.Writer) error {
	_, err := fmt.Fprintf(out, "package main\n\n// @generated from %v\n\n", g.source)
	if err == nil && len(g.args) >= 2 {
		_, err = fmt.Fprintf(out, "//go:generate go run %v -type %v -infix %v -- %v\n\n",
			scriptPath, g.caseType, g.infix, strings.Join(g.args, " "))
	}
	return err
}

func (g *generator) write(out io.Writer, w wrapper) error {
	_, err := fmt.Fprintf(out, ""+
		"func %[1]v%[2]v%[3]v(%[4]v) func(%[5]v) %[5]v {\n"+
		"\treturn func(vmt %[5]v) %[5]v {\n"+
		"\t\treturn vmt.%[1]v%[3]v(%[6]v)\n"+
		"\t}\n"+
		"}\n\n",
		w.prefix, g.infix, w.name, w.params, g.caseType, strings.Join(w.pass, ", "))
	return err
}

// generate copies a wrapper for every matching method in the source read
// from in, checking ctx between lines.
func (g *generator) generate(ctx context.Context, in io.Reader, out io.Writer) error {
	if err := g.header(out); err != nil {
		return err
	}
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if w, ok := g.parse(sc.Text()); ok {
			if err := g.write(out, w); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}

func main() {
	caseType := flag.String("type", "vmTestCase", "test case builder type to wrap methods of")
	infix := flag.String("infix", "VM", "infix to add to wrapper names, after expect or with")
	flag.Parse()

	var (
		args   = flag.Args()
		in     = io.ReadCloser(os.Stdin)
		source = "<stdin>"
		out    = io.WriteCloser(os.Stdout)
		err    error
	)
	if len(args) > 0 {
		source = args[0]
		if in, err = os.Open(source); err != nil {
			log.Fatalf("failed to open %v: %v", source, err)
		}
	}
	if len(args) > 1 {
		if out, err = os.Create(args[1]); err != nil {
			log.Fatalf("failed to create %v: %v", args[1], err)
		}
	}
	g := newGenerator(*caseType, *infix, source, args)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// source flows through goimports, which fills in the import block
	pr, pw := io.Pipe()
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer out.Close()
		goimports := exec.CommandContext(ctx, "goimports")
		goimports.Stdin = pr
		goimports.Stdout = out
		goimports.Stderr = os.Stderr
		if err := goimports.Run(); err != nil {
			pr.CloseWithError(err)
			return fmt.Errorf("goimports failed: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		defer in.Close()
		err := g.generate(ctx, in, pw)
		pw.CloseWithError(err)
		return err
	})
	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}
