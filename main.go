package main

import (
	"database/sql"
	"os"
	"path"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/biokg/snp2kg/internal/util"
	"github.com/biokg/snp2kg/logger"
	mydb "github.com/biokg/snp2kg/pkg/db"
	"github.com/biokg/snp2kg/pkg/pipeline"
	"github.com/biokg/snp2kg/pkg/render"
	"github.com/biokg/snp2kg/pkg/source"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

const VERSION = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {

	// Establish logger
	logLevel := logger.ParseLevel(os.Getenv("SNP2KG_LOG_LEVEL"))

	if err := logger.InitLogger(logLevel); err != nil {
		panic(err)
	}

	// Try load env
	dotenvErr := godotenv.Load()

	if dotenvErr != nil {
		logger.Warn("No .env found, using local environment")
	}

	defer logger.Sync() // Make sure that the buffered is flushed.

	dataDir := os.Getenv("SNP2KG_DATA")
	if dataDir == "" {
		logger.Warn("No local environment (SNP2KG_DATA), using default value (./data)")
		dataDir = "./data"
	}

	outDir := os.Getenv("SNP2KG_OUT")
	if outDir == "" {
		logger.Warn("No local environment (SNP2KG_OUT), using default value (./out)")
		outDir = "./out"
	}

	snapshotPath := path.Join(dataDir, "db/annotations.db")

	logger.Info("Start:", zap.String("Version", VERSION))
	logger.Info("Open annotation snapshot on", zap.String("DB_LOC", snapshotPath))

	// sql.Open would create an empty database file for a bad path and the
	// run would only fail later with a confusing "no such table".
	if !util.FileExists(snapshotPath) {
		logger.Error("Annotation snapshot not found", zap.String("DB_LOC", snapshotPath))
		return 1
	}

	db, err := sql.Open("sqlite", snapshotPath)
	if err != nil {
		logger.Error("Cannot open snapshot database", zap.String("error message", err.Error()))
		return 1
	}
	defer db.Close()

	inputs, err := loadInputs(db)
	if err != nil {
		logger.Error("Cannot load snapshot tables", zap.String("error message", err.Error()))
		return 1
	}

	out, err := pipeline.Run(inputs)
	if err != nil {
		logger.Error("Pipeline failed", zap.String("error message", err.Error()))
		return 1
	}

	if err := util.EnsureDir(outDir); err != nil {
		logger.Error("Cannot create output directory", zap.String("error message", err.Error()))
		return 1
	}

	if err := writeOutputs(outDir, out); err != nil {
		logger.Error("Cannot write outputs", zap.String("error message", err.Error()))
		return 1
	}

	logger.Info("Maps written", zap.String("out_dir", outDir),
		zap.Int("chromosome_map_entries", out.Report.ChromosomeMapEntries),
		zap.Int("triple_entries", out.Report.TripleEntries))
	return 0
}

func loadInputs(db *sql.DB) (pipeline.Inputs, error) {

	var inputs pipeline.Inputs
	var err error

	loaders := []struct {
		load func(*sql.DB) (source.Table, error)
		dst  *source.Table
	}{
		{mydb.LoadSymbolGenes, &inputs.SymbolGenes},
		{mydb.LoadNumericGenes, &inputs.NumericGenes},
		{mydb.LoadAssociations, &inputs.Associations},
	}

	for _, l := range loaders {
		*l.dst, err = l.load(db)
		if err != nil {
			return pipeline.Inputs{}, err
		}
	}

	return inputs, nil
}

func writeOutputs(outDir string, out *pipeline.Outputs) error {

	chromFile, err := os.Create(filepath.Join(outDir, "chromosome_map.tsv"))
	if err != nil {
		return err
	}
	defer chromFile.Close()

	if err := render.WriteChromosomeMap(chromFile, out.ChromosomeMap); err != nil {
		return err
	}

	tripleFile, err := os.Create(filepath.Join(outDir, "triple_map.tsv"))
	if err != nil {
		return err
	}
	defer tripleFile.Close()

	if err := render.WriteTriples(tripleFile, out.Triples); err != nil {
		return err
	}

	reportFile, err := os.Create(filepath.Join(outDir, "run_report.json"))
	if err != nil {
		return err
	}
	defer reportFile.Close()

	return render.WriteReport(reportFile, out.Report)
}
