package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/simp-lee/novelpub"
)

var exportCmd = &cobra.Command{
	Use:   "export <novel-dir>",
	Short: "Export a novel directory to an ePub file",
	Long: `export reads per-chapter text files (chapter_<N>.txt) from the
chapters/ subdirectory of the given novel directory and assembles them
into a single ePub archive.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		novelDir := args[0]
		title, _ := cmd.Flags().GetString("title")
		author, _ := cmd.Flags().GetString("author")
		outputPath, _ := cmd.Flags().GetString("output")

		if title == "" {
			title = filepath.Base(filepath.Clean(novelDir))
		}
		if outputPath == "" {
			outputPath = filepath.Join(novelDir, title+".epub")
		}

		loader := novelpub.NewLoader(logger)
		if err := loader.ExportNovel(novelDir, outputPath, title, author); err != nil {
			logger.Error("export failed", zap.String("novel_dir", novelDir), zap.Error(err))
			return fmt.Errorf("export %s: %w", novelDir, err)
		}

		logger.Info("export complete", zap.String("output", outputPath))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output ePub path (default: <novel-dir>/<title>.epub)")
	exportCmd.Flags().StringP("title", "t", "", "Book title (default: novel directory name)")
	exportCmd.Flags().StringP("author", "a", "", "Book author (default: \""+novelpub.DefaultAuthor+"\")")
	rootCmd.AddCommand(exportCmd)
}
