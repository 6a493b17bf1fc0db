// Command aescrypt encrypts or decrypts stdin with AES-128 in ECB, CBC or
// CTR mode and writes the result to stdout.
//
// Usage:
//
//	aescrypt [-config file.yaml] [-mode ecb|cbc|ctr] [-key TEXT | -key-hex HEX]
//	    [-iv HEX] [-d] [-in raw|hex|base64] [-out raw|hex|base64] [-v]
//
// For example, the set 1 challenge 7 input decrypts with:
//
//	aescrypt -d -mode ecb -key "YELLOW SUBMARINE" -in base64 < 7.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"jayconrod.com/aesmodes/crypto"
	"jayconrod.com/aesmodes/internal/codec"
	"jayconrod.com/aesmodes/internal/config"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin *os.File, stdout io.Writer) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	log.SetLevel(level)

	if term.IsTerminal(int(stdin.Fd())) {
		log.Info("reading input from stdin...")
	}
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return process(cfg, raw, stdout)
}

// process runs a validated config over raw input.
func process(cfg *config.Config, raw []byte, w io.Writer) error {
	in, err := cfg.InputFormat.Decode(raw)
	if err != nil {
		return err
	}
	key, err := cfg.KeyBytes()
	if err != nil {
		return err
	}
	iv, err := cfg.IVBytes()
	if err != nil {
		return err
	}

	var out []byte
	if cfg.Decrypt {
		if cfg.Mode != crypto.CTR && len(in)%crypto.BlockSize != 0 {
			return fmt.Errorf("ciphertext length %d is not a multiple of %d", len(in), crypto.BlockSize)
		}
		log.Debugf("decrypting %d bytes with AES-128-%v", len(in), cfg.Mode)
		if out, err = crypto.Decrypt(in, key, iv, cfg.Mode); err != nil {
			return err
		}
	} else {
		log.Debugf("encrypting %d bytes with AES-128-%v", len(in), cfg.Mode)
		out = crypto.Encrypt(in, key, iv, cfg.Mode)
	}

	enc, err := cfg.OutputFormat.Encode(out)
	if err != nil {
		return err
	}
	_, err = w.Write(enc)
	return err
}

// parseArgs loads the config file named by -config, if any, and applies
// the flags that were set on top of it.
func parseArgs(args []string) (*config.Config, error) {
	fs := flag.NewFlagSet("aescrypt", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "YAML config file")
		mode       = fs.String("mode", "", "block mode: ecb, cbc or ctr")
		key        = fs.String("key", "", "key as text")
		keyHex     = fs.String("key-hex", "", "key as hex")
		iv         = fs.String("iv", "", "IV (or 8-byte CTR nonce) as hex; zero if unset")
		decrypt    = fs.Bool("d", false, "decrypt instead of encrypt")
		in         = fs.String("in", "", "input encoding: raw, hex or base64")
		out        = fs.String("out", "", "output encoding: raw, hex or base64")
		verbose    = fs.Bool("v", false, "log debug messages")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return nil, err
		}
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "mode":
			cfg.Mode, err = crypto.ParseMode(*mode)
		case "key":
			cfg.Key, cfg.KeyHex = *key, ""
		case "key-hex":
			cfg.KeyHex = *keyHex
		case "iv":
			cfg.IV = *iv
		case "d":
			cfg.Decrypt = *decrypt
		case "in":
			cfg.InputFormat, err = codec.ParseFormat(*in)
		case "out":
			cfg.OutputFormat, err = codec.ParseFormat(*out)
		case "v":
			if *verbose {
				cfg.LogLevel = "debug"
			}
		}
	})
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
