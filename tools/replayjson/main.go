package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zaesho/rl-dissect/dissect"
)

func main() {
	network := flag.Bool("network", true, "decode the network stream (frames)")
	strict := flag.Bool("strict", false, "fail instead of dropping frames when the network stream fails")
	crc := flag.Bool("crc", false, "always verify section checksums")
	pretty := flag.Bool("pretty", false, "indent the JSON output")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: replayjson [flags] <match.replay>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	r := dissect.Reader{NetworkPolicy: dissect.NetworkIgnoreOnError}
	if !*network {
		r.NetworkPolicy = dissect.NetworkNever
	} else if *strict {
		r.NetworkPolicy = dissect.NetworkAlways
	}
	if *crc {
		r.CrcPolicy = dissect.CrcAlways
	}

	replay, err := r.Open(flag.Arg(0))
	if err != nil {
		log.Error().Err(err).Str("file", flag.Arg(0)).Msg("failed to decode replay")
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(replay); err != nil {
		log.Error().Err(err).Msg("failed to encode JSON")
		os.Exit(1)
	}
}
