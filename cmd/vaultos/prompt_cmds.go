package main

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/vaultos/internal/app"
	"github.com/sandeepkv93/vaultos/internal/model"
	"github.com/spf13/cobra"
)

func newLogCmd(opts *cliOptions) *cobra.Command {
	var idea, review, reviewFile string
	cmd := &cobra.Command{
		Use:       "log <category>",
		Short:     "Record the final decision from a review",
		Args:      cobra.ExactArgs(1),
		ValidArgs: model.CategoryNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, review, reviewFile)
			if err != nil {
				return err
			}
			ws, closer, err := opts.openWorkspace(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer closer.Close()

			d, _, err := ws.LogDecision(cmd.Context(), args[0], idea, text)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n", d.Entry.Decision, d.Entry.Idea, d.Target)
			return nil
		},
	}
	cmd.Flags().StringVar(&idea, "idea", "", "idea text")
	cmd.Flags().StringVar(&review, "review", "", "review text")
	cmd.Flags().StringVar(&reviewFile, "review-file", "", "read the review from a file, or - for stdin")
	return cmd
}

func newPromptCmd(opts *cliOptions) *cobra.Command {
	var input, inputFile string
	var toStdout bool
	cmd := &cobra.Command{
		Use:       "prompt <category>",
		Short:     "Assemble a category prompt and copy it",
		Args:      cobra.ExactArgs(1),
		ValidArgs: model.CategoryNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, input, inputFile)
			if err != nil {
				return err
			}
			clip, system := opts.clipboardFor(cmd.OutOrStdout(), toStdout)
			ws, closer, err := opts.openWorkspace(cmd.Context(), clip)
			if err != nil {
				return err
			}
			defer closer.Close()

			out, err := ws.CopyPrompt(cmd.Context(), args[0], text)
			if err != nil {
				return err
			}
			if system {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s prompt copied to clipboard (%d chars)\n", args[0], len([]rune(out)))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "text substituted into the category placeholder")
	cmd.Flags().StringVar(&inputFile, "input-file", "", "read the input from a file, or - for stdin")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "print the prompt instead of copying it")
	return cmd
}

func newFinalizeCmd(opts *cliOptions) *cobra.Command {
	var blueprintFile string
	var assemble bool
	cmd := &cobra.Command{
		Use:   "finalize",
		Short: "Hand the PM blueprint to the engineer step",
		Long:  `Reads the PM review output and prints it as the engineer input. With --prompt the engineer prompt is assembled around it.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if blueprintFile == "" {
				blueprintFile = "-"
			}
			raw, err := readText(cmd, "", blueprintFile)
			if err != nil {
				return err
			}
			blueprint, err := app.FinalizeBlueprint(raw)
			if err != nil {
				return err
			}
			if !assemble {
				fmt.Fprintln(cmd.OutOrStdout(), blueprint)
				return nil
			}
			ws, closer, err := opts.openWorkspace(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer closer.Close()
			out, err := ws.Assembler.Assemble(cmd.Context(), string(model.CategoryEngineer), blueprint)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
			return nil
		},
	}
	cmd.Flags().StringVar(&blueprintFile, "blueprint-file", "", "PM output file, or - for stdin (default)")
	cmd.Flags().BoolVar(&assemble, "prompt", false, "assemble the engineer prompt around the blueprint")
	return cmd
}
