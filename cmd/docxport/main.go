package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yuanying/docxport/internal/export"
	"github.com/yuanying/docxport/internal/model"
	"github.com/yuanying/docxport/internal/opc"
)

var rootCmd = &cobra.Command{
	Use:   "docxport",
	Short: "Export proposal documents to DOCX or print-ready HTML",
	Long: `docxport encodes a proposal document (JSON section model) into a
valid OOXML .docx package, or into a single self-contained HTML page
for print-to-PDF flows.`,
}

var exportCmd = &cobra.Command{
	Use:   "export <document.json>",
	Short: "Encode a document file in the requested format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := args[0]
		format, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")
		noImages, _ := cmd.Flags().GetBool("no-images")
		metadata, _ := cmd.Flags().GetBool("metadata")
		maxWidth, _ := cmd.Flags().GetInt("max-image-width")

		data, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}
		doc, err := model.LoadDocument(data)
		if err != nil {
			return err
		}

		opts := export.Options{
			Format:          format,
			IncludeImages:   !noImages,
			IncludeMetadata: metadata,
			MaxImageWidth:   maxWidth,
		}

		if format == export.FormatPDF {
			// No print dialog on the command line: the rendered page is
			// written next to the requested output for a browser or headless
			// renderer to finish the job.
			htmlPath := outputPath
			if htmlPath == "" {
				htmlPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".html"
			}
			opts.Printer = export.HTMLFilePrinter{Path: htmlPath}
			res := export.Export(doc, opts)
			if !res.Success {
				return res.Err
			}
			log.Printf("Print page written: %s (suggested PDF name: %s)", htmlPath, res.Filename)
			return nil
		}

		res := export.Export(doc, opts)
		if !res.Success {
			return res.Err
		}

		if outputPath == "" {
			outputPath = res.Filename
		}
		if err := os.WriteFile(outputPath, res.Bytes, 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		log.Printf("Done: %s (%d bytes)", outputPath, len(res.Bytes))
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.docx>",
	Short: "List the parts and relationships of a generated package",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read package: %w", err)
		}
		r, err := opc.NewReader(data)
		if err != nil {
			return err
		}

		fmt.Println("Parts:")
		for _, name := range r.Parts() {
			fmt.Printf("  %s\n", name)
		}

		for _, relPart := range []string{"_rels/.rels", "word/_rels/document.xml.rels"} {
			rels, err := r.Relationships(relPart)
			if err != nil {
				log.Printf("warning: %v", err)
				continue
			}
			fmt.Printf("%s:\n", relPart)
			for _, rel := range rels {
				fmt.Printf("  %s -> %s\n", rel.ID, rel.Target)
			}
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "docx", "Output format: docx or pdf")
	exportCmd.Flags().StringP("output", "o", "", "Output file path (default: derived from the document name)")
	exportCmd.Flags().Bool("no-images", false, "Skip embedding data-URI images")
	exportCmd.Flags().Bool("metadata", false, "Include creator metadata in the package")
	exportCmd.Flags().Int("max-image-width", 0, "Downscale embedded images to at most this width in pixels (0 = keep as-is)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
