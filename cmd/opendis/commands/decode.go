package commands

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marmos91/opendis/internal/cli/output"
	"github.com/marmos91/opendis/pkg/dis/pdu"
)

var (
	decodeFile   string
	decodeOutput string
)

var decodeCmd = &cobra.Command{
	Use:   "decode [hex]",
	Short: "Decode PDU bytes",
	Long: `Decode one or more concatenated PDUs and print them.

Input is a hex string argument, or raw bytes from --file (use - for stdin).
Exported session streams (.dis files) can be decoded directly.

Examples:
  # Decode a hex dump
  opendis decode 0705160500000000001c0000...

  # Decode an exported session as JSON
  opendis decode --file session.dis -o json

  # Decode from a pipe
  cat capture.bin | opendis decode --file -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeFile, "file", "f", "", "read raw PDU bytes from a file (- for stdin)")
	decodeCmd.Flags().StringVarP(&decodeOutput, "output", "o", "table", "Output format (table|json|yaml)")
}

// DecodedPDU is one decoded frame.
type DecodedPDU struct {
	Offset int     `json:"offset"`
	Name   string  `json:"name,omitempty"`
	PDU    pdu.PDU `json:"pdu,omitempty"`
	Error  string  `json:"error,omitempty"`
}

type decodeResult struct {
	PDUs     []DecodedPDU `json:"pdus"`
	Trailing int          `json:"trailing_bytes,omitempty"`
	Error    string       `json:"error,omitempty"`
}

func (r decodeResult) Headers() []string {
	return []string{"#", "Offset", "Type", "Family", "Exercise", "Version", "Length", "Timestamp"}
}

func (r decodeResult) Rows() [][]string {
	rows := make([][]string, 0, len(r.PDUs))
	for i, d := range r.PDUs {
		if d.PDU == nil {
			rows = append(rows, []string{strconv.Itoa(i), strconv.Itoa(d.Offset), "error: " + d.Error, "", "", "", "", ""})
			continue
		}
		h := d.PDU.PDUHeader()
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.Itoa(d.Offset),
			d.Name,
			h.ProtocolFamily.String(),
			strconv.Itoa(int(h.ExerciseID)),
			strconv.Itoa(int(h.ProtocolVersion)),
			strconv.Itoa(int(h.Length)),
			h.Timestamp.String(),
		})
	}
	return rows
}

// parseHex accepts hex with optional whitespace, colons and 0x prefix.
func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return b, nil
}

// decodeBytes splits b into frames and decodes each. Framing stops at the
// first malformed header; the bytes after it are reported as trailing.
func decodeBytes(b []byte) decodeResult {
	frames, ferr := pdu.Frames(b)
	res := decodeResult{PDUs: make([]DecodedPDU, 0, len(frames))}
	off := 0
	for _, f := range frames {
		d := DecodedPDU{Offset: off}
		p, err := pdu.DefaultRegistry.Decode(f)
		if err != nil {
			d.Error = err.Error()
		} else {
			d.PDU = p
			d.Name = pdu.DefaultRegistry.Name(p.Kind())
		}
		res.PDUs = append(res.PDUs, d)
		off += len(f)
	}
	if ferr != nil {
		res.Trailing = len(b) - off
		res.Error = ferr.Error()
	}
	return res
}

// yamlView routes PDUs through their JSON form so YAML output uses the
// same field names.
func (r decodeResult) yamlView() (any, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func readDecodeInput(args []string, stdin io.Reader) ([]byte, error) {
	switch {
	case decodeFile == "-":
		return io.ReadAll(stdin)
	case decodeFile != "":
		return os.ReadFile(decodeFile)
	case len(args) == 1:
		return parseHex(args[0])
	default:
		return nil, fmt.Errorf("provide a hex argument or --file")
	}
}

func runDecode(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(decodeOutput)
	if err != nil {
		return err
	}
	b, err := readDecodeInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	res := decodeBytes(b)

	out := cmd.OutOrStdout()
	switch format {
	case output.FormatJSON:
		err = output.PrintJSON(out, res)
	case output.FormatYAML:
		var v any
		if v, err = res.yamlView(); err == nil {
			err = output.PrintYAML(out, v)
		}
	default:
		err = output.PrintTable(out, res)
		if err == nil && res.Error != "" {
			_, _ = fmt.Fprintf(out, "\n%d trailing byte(s): %s\n", res.Trailing, res.Error)
		}
	}
	if err != nil {
		return err
	}
	if len(res.PDUs) == 0 && res.Error != "" {
		return fmt.Errorf("no PDU decoded: %s", res.Error)
	}
	return nil
}
