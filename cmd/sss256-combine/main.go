package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/wbrc/sss256"
	"github.com/wbrc/sss256/internal/cliargs"
	"github.com/wbrc/sss256/internal/errwriter"
	"github.com/wbrc/sss256/internal/exitcode"
)

func main() {
	os.Exit(int(run()))
}

func run() exitcode.Code {
	args, help, argErr := cliargs.ParseCombine("sss256-combine", os.Args[1:], os.Stderr)
	if help {
		return exitcode.OK
	}
	if argErr != nil {
		return exitArgCode(argErr)
	}

	errW := errwriter.New(os.Stderr)
	out := bufio.NewWriter(os.Stdout)

	code := doCombine(errW, out, args.Threshold)
	if code == exitcode.OK {
		if err := out.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write secret to stdout: %v\n", err)
			return exitcode.StdoutFailed
		}
	}
	if code == exitcode.OK && errW.Err() != nil {
		return exitcode.StderrFailed
	}
	return code
}

func doCombine(errW *errwriter.Writer, out *bufio.Writer, t int) exitcode.Code {
	coord, err := sss256.ParseShares(os.Stdin, errW, t)
	if err != nil {
		switch err {
		case sss256.ErrParse:
			return exitcode.ParseError
		case sss256.ErrShareTooLong:
			return exitcode.ShareTooLong
		default:
			fmt.Fprintf(os.Stderr, "failed to read shares from stdin: %v\n", err)
			return exitcode.StdinFailed
		}
	}

	if err := sss256.Reconstruct(coord, t, out); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write secret to stdout: %v\n", err)
		return exitcode.StdoutFailed
	}

	return exitcode.OK
}

func exitArgCode(err error) exitcode.Code {
	var ae *cliargs.Error
	if e, ok := err.(*cliargs.Error); ok {
		ae = e
	}
	if ae == nil {
		return exitcode.UnknownArgParserError
	}
	switch ae.Kind {
	case cliargs.KindUnknownFlag:
		return exitcode.UnknownArgument
	case cliargs.KindInvalidValue, cliargs.KindOutOfRange:
		return exitcode.InvalidArgumentValue
	default:
		return exitcode.UnknownArgParserError
	}
}
