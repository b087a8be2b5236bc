package main

import (
	"bytes"
	"context"
	"encoding/json/jsontext"
	"encoding/json/v2"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/urfave/cli/v3"

	"github.com/nlowe/hadiscovery"
	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/log"
	"github.com/nlowe/hadiscovery/platform"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "hadisco",
		Usage:   "render Home Assistant MQTT discovery payloads",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "enable debug logs"},
			&cli.StringFlag{
				Name:    "prefix",
				Value:   discovery.DefaultPrefix,
				Usage:   "discovery topic prefix",
				Sources: cli.EnvVars("HADISCO_PREFIX"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				log.To(slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{Level: slog.LevelDebug}))
			}

			return ctx, nil
		},
		Commands: []*cli.Command{
			domainsCommand(),
			topicCommand(),
			renderCommand(),
		},
	}
}

func domainFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "domain",
		Usage:    "entity domain, e.g. sensor or binary_sensor",
		Required: true,
		Validator: func(s string) error {
			if _, err := platform.New(platform.Domain(s)); err != nil {
				return err
			}

			return nil
		},
	}
}

func domainsCommand() *cli.Command {
	return &cli.Command{
		Name:  "domains",
		Usage: "list supported entity domains",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, d := range platform.Domains() {
				if _, err := fmt.Fprintln(cmd.Root().Writer, d); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func topicCommand() *cli.Command {
	return &cli.Command{
		Name:  "topic",
		Usage: "print the discovery topic for an entity",
		Flags: []cli.Flag{
			domainFlag(),
			&cli.StringFlag{Name: "node-id", Usage: "optional node id"},
			&cli.StringFlag{Name: "object-id", Usage: "object id", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintln(cmd.Root().Writer, hadiscovery.Topic(
				cmd.String("prefix"),
				platform.Domain(cmd.String("domain")),
				cmd.String("node-id"),
				cmd.String("object-id"),
			))

			return err
		},
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "render a descriptor written in YAML or JSON (full or abbreviated keys) to its discovery payload",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			domainFlag(),
			&cli.StringFlag{
				Name:  "format",
				Value: formatJSON,
				Usage: "output format, json or yaml",
				Validator: func(s string) error {
					switch s {
					case formatJSON, formatYAML:
						return nil
					default:
						return fmt.Errorf("unsupported format %q", s)
					}
				},
			},
			&cli.BoolFlag{Name: "pretty", Usage: "indent json output"},
			&cli.BoolFlag{Name: "expand", Usage: "write full key names instead of abbreviations"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			src, err := readInput(cmd)
			if err != nil {
				return err
			}

			e, err := platform.DecodeYAML(platform.Domain(cmd.String("domain")), src)
			if err != nil {
				return err
			}

			var opts []jsontext.Options
			if cmd.Bool("pretty") {
				opts = append(opts, jsontext.WithIndent("  "))
			}

			payload, err := json.Marshal(e, json.JoinOptions(append(opts, json.WithMarshalers(discovery.Marshalers))...))
			if err != nil {
				return fmt.Errorf("render %s: %w", e.Domain(), err)
			}

			if cmd.Bool("expand") {
				if payload, err = expandKeys(payload, opts...); err != nil {
					return fmt.Errorf("render %s: %w", e.Domain(), err)
				}
			}

			if cmd.String("format") == formatYAML {
				if payload, err = yaml.JSONToYAML(payload); err != nil {
					return fmt.Errorf("render %s: %w", e.Domain(), err)
				}
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, strings.TrimSpace(string(payload)))
			return err
		},
	}
}

// expandKeys rewrites every object name in src to its long form with discovery.Expand.
func expandKeys(src []byte, opts ...jsontext.Options) ([]byte, error) {
	var buf bytes.Buffer
	d := jsontext.NewDecoder(bytes.NewReader(src))
	e := jsontext.NewEncoder(&buf, opts...)

	for {
		tok, err := d.ReadToken()
		if errors.Is(err, io.EOF) {
			return buf.Bytes(), nil
		}

		if err != nil {
			return nil, err
		}

		// Inside an object, an odd number of tokens read means tok was a name.
		if kind, n := d.StackIndex(d.StackDepth()); kind == '{' && n%2 == 1 {
			tok = jsontext.String(discovery.Expand(tok.String()))
		}

		if err = e.WriteToken(tok); err != nil {
			return nil, err
		}
	}
}

func readInput(cmd *cli.Command) ([]byte, error) {
	path := cmd.Args().First()
	if path == "" || path == "-" {
		return io.ReadAll(cmd.Root().Reader)
	}

	return os.ReadFile(path)
}
