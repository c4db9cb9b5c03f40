package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// marshalIndent renders v as two-space indented JSON with a trailing
// newline, the shape shared by stdout output and --out files.
func marshalIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// writeJSON prints v to the command's stdout in the marshalIndent shape.
func writeJSON(cmd *cobra.Command, v any) error {
	data, err := marshalIndent(v)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
