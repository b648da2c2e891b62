// plangc compiles plang source files into serialized constraint
// systems for a plonk backend.
//
// Usage:
//
//	plangc compile [-curve bls12381] [-o out.cs] circuit.plang
//	plangc check -vals a=1,b=1,c=2 circuit.plang
//	plangc id circuit.plang
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/rs/zerolog"

	"github.com/zkplang/plang"
	"github.com/zkplang/plang/field"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cmd := os.Args[1]
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	curve := fs.String("curve", "bls12381", "proving field: bls12381 or bn254")
	output := fs.String("o", "", "output file (default: input with extension .cs)")
	vals := fs.String("vals", "", "comma separated name=value assignment")
	if err := fs.Parse(os.Args[2:]); err != nil {
		log.Fatal().Err(err).Msg("parsing flags")
	}
	if fs.NArg() != 1 {
		usage()
	}
	file := fs.Arg(0)

	order, err := fieldOrder(*curve)
	if err != nil {
		log.Fatal().Err(err).Msg("selecting field")
	}

	src, err := os.ReadFile(file)
	if err != nil {
		log.Fatal().Err(err).Msg("reading circuit")
	}

	cs, err := plang.Compile(order, string(src))
	if err != nil {
		log.Fatal().Err(err).Str("circuit", file).Msg("compiling")
	}

	switch cmd {
	case "compile":
		out := *output
		if out == "" {
			out = strings.TrimSuffix(file, ".plang") + ".cs"
		}
		f, err := os.Create(out)
		if err != nil {
			log.Fatal().Err(err).Msg("creating output")
		}
		defer f.Close()
		if _, err := cs.WriteTo(f); err != nil {
			log.Fatal().Err(err).Msg("writing constraint system")
		}
		log.Info().Str("output", out).Int("nbGates", cs.NbGates()).Msg("wrote constraint system")
	case "check":
		assignment, err := parseVals(*vals)
		if err != nil {
			log.Fatal().Err(err).Msg("parsing -vals")
		}
		ok, err := cs.Satisfied(field.GetFieldFromOrder(order), assignment)
		if err != nil {
			log.Fatal().Err(err).Msg("evaluating circuit")
		}
		if !ok {
			log.Fatal().Msg("assignment does not satisfy the circuit")
		}
		log.Info().Msg("assignment satisfies the circuit")
	case "id":
		id, err := cs.ID()
		if err != nil {
			log.Fatal().Err(err).Msg("hashing circuit")
		}
		fmt.Printf("%x\n", id)
	default:
		usage()
	}
}

func fieldOrder(curve string) (*big.Int, error) {
	switch curve {
	case "bls12381":
		return ecc.BLS12_381.ScalarField(), nil
	case "bn254":
		return ecc.BN254.ScalarField(), nil
	}
	return nil, fmt.Errorf("unknown curve %q", curve)
}

// parseVals parses "a=1,b=-2" style assignments. Values are passed to
// the field as decimal strings, so negatives and values larger than a
// machine word are fine.
func parseVals(s string) (map[string]interface{}, error) {
	vals := make(map[string]interface{})
	if s == "" {
		return vals, nil
	}
	for _, kv := range strings.Split(s, ",") {
		name, val, found := strings.Cut(kv, "=")
		if !found {
			return nil, fmt.Errorf("invalid name=value pair %q", kv)
		}
		vals[strings.TrimSpace(name)] = strings.TrimSpace(val)
	}
	return vals, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: plangc <compile|check|id> [flags] circuit.plang")
	os.Exit(2)
}
