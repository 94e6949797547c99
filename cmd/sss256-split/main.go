package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/wbrc/sss256"
	"github.com/wbrc/sss256/internal/arena"
	"github.com/wbrc/sss256/internal/cliargs"
	"github.com/wbrc/sss256/internal/entropy"
	"github.com/wbrc/sss256/internal/errwriter"
	"github.com/wbrc/sss256/internal/exitcode"
)

func main() {
	os.Exit(int(run()))
}

func run() exitcode.Code {
	args, help, argErr := cliargs.ParseSplit("sss256-split", os.Args[1:], os.Stderr)
	if help {
		return exitcode.OK
	}
	if argErr != nil {
		return exitArgCode(argErr)
	}

	a := arena.New()
	defer a.Release()

	errW := errwriter.New(os.Stderr)
	out := bufio.NewWriter(os.Stdout)

	code := doSplit(a, errW, out, args.Threshold, args.Shares)
	if code == exitcode.OK {
		if err := out.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write shares to stdout: %v\n", err)
			return exitcode.StdoutFailed
		}
	}
	if code == exitcode.OK && errW.Err() != nil {
		return exitcode.StderrFailed
	}
	return code
}

func doSplit(a *arena.Arena, errW *errwriter.Writer, out *bufio.Writer, t, n int) exitcode.Code {
	secret, err := sss256.ReadSecret(os.Stdin)
	if err != nil {
		if err == sss256.ErrEmptySecret {
			fmt.Fprintf(errW, "error: %v\n", err)
			return exitcode.EmptySecret
		}
		fmt.Fprintf(os.Stderr, "failed to read secret from stdin: %v\n", err)
		return exitcode.StdinFailed
	}

	deg, err := arena.CheckedMul(len(secret), t-1)
	if err != nil {
		fmt.Fprintf(errW, "error: %v\n", err)
		return exitcode.OutOfMemory
	}
	coeffs, err := a.Alloc(deg)
	if err != nil {
		fmt.Fprintf(errW, "error: %v\n", err)
		return exitcode.OutOfMemory
	}

	if err := entropy.Read(coeffs); err != nil {
		fmt.Fprintf(errW, "error: %v\n", err)
		return exitcode.NoEntropy
	}

	if err := sss256.Digest(errW, coeffs); err != nil {
		return exitcode.StderrFailed
	}

	if err := sss256.EncodeShares(secret, coeffs, n, out); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write shares to stdout: %v\n", err)
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
	case cliargs.KindThresholdExceedsShares:
		return exitcode.ThresholdExceedsShares
	default:
		return exitcode.UnknownArgParserError
	}
}
