package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/opendata-swiss/geocat-crosswalk/geocat"
	"github.com/opendata-swiss/geocat-crosswalk/vocabulary"
)

// Defaults match the harvest configuration of the production catalog.
const (
	defaultPermalinkBase  = "https://www.geocat.ch/geonetwork/srv/ger/md.viewer#/full_view/"
	defaultPermalinkLabel = "geocat.ch Permalink"
	defaultRights         = "NonCommercialAllowed-CommercialAllowed-ReferenceRequired"
)

var (
	inputFile        string
	outputFile       string
	sourceID         string
	organization     string
	permalinkBase    string
	permalinkLabel   string
	legalBasisURL    string
	rights           string
	validIdentifiers []string
	pretty           bool
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Map one CSW record to a dataset",
	Long: `Map one ISO19139/CHE metadata record to an opendata.swiss dataset.

Input defaults to stdin, output defaults to stdout.

Examples:
  geocat-crosswalk map --organization swisstopo --source-id 93814e81 -i record.xml
  cat record.xml | geocat-crosswalk map --organization bafu --source-id 93814e81 --pretty

  # Keep cross-references that exist in the target catalog
  geocat-crosswalk map --organization swisstopo --source-id 93814e81 \
    --valid-identifier 8454f7d9@swisstopo -i record.xml`,
	RunE: runMap,
}

func init() {
	mapCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
	mapCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	mapCmd.Flags().StringVar(&sourceID, "source-id", "", "Source record identifier (required)")
	mapCmd.Flags().StringVar(&organization, "organization", "", "Target catalog organization slug (required)")
	mapCmd.Flags().StringVar(&permalinkBase, "permalink-url", defaultPermalinkBase, "Base URL for the source permalink relation")
	mapCmd.Flags().StringVar(&permalinkLabel, "permalink-label", defaultPermalinkLabel, "Label for the source permalink relation")
	mapCmd.Flags().StringVar(&legalBasisURL, "legal-basis-url", "", "Legal basis URL appended to the dataset relations")
	mapCmd.Flags().StringVar(&rights, "rights", defaultRights, "Rights value used when the record's terms of use match nothing")
	mapCmd.Flags().StringSliceVar(&validIdentifiers, "valid-identifier", nil, "Composite identifier known to exist in the target catalog (repeatable)")
	mapCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	_ = mapCmd.MarkFlagRequired("source-id")
	_ = mapCmd.MarkFlagRequired("organization")
}

func runMap(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	vocab, err := vocabulary.Load()
	if err != nil {
		return fmt.Errorf("loading vocabularies: %w", err)
	}

	valid := make(map[string]struct{}, len(validIdentifiers))
	for _, id := range validIdentifiers {
		valid[id] = struct{}{}
	}

	mapping := &geocat.Mapping{
		OrganizationSlug: organization,
		PermalinkBase:    permalinkBase,
		PermalinkLabel:   permalinkLabel,
		LegalBasisURL:    legalBasisURL,
		DefaultRights:    rights,
		ValidIdentifiers: valid,
		Vocabulary:       vocab,
	}

	dataset, err := mapping.Dataset(raw, sourceID)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("opening output: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(dataset)
}
