// Package pipeline runs the reconciliation end to end.
//
// Process composes the reconcile and resolve stages over rows that are already
// loaded. Run opens both workbooks, loads the VP sheets and the central document
// sheet, and hands the rows to Process. A run fails fast: the first error aborts
// it and no partial bundle is returned.
package pipeline

import (
	"context"
	"fmt"

	"github.com/agentstation/utc"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/agentstation/bimmap/pkg/constants"
	"github.com/agentstation/bimmap/pkg/datamodel"
	"github.com/agentstation/bimmap/pkg/errors"
	"github.com/agentstation/bimmap/pkg/logging"
	"github.com/agentstation/bimmap/pkg/reconcile"
	"github.com/agentstation/bimmap/pkg/resolve"
	"github.com/agentstation/bimmap/pkg/types"
	"github.com/agentstation/bimmap/pkg/workbook"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Sources names the two workbooks of a run.
type Sources struct {
	VPFile         string `validate:"required"`
	CentralDocFile string `validate:"required"`

	// CentralSheet defaults to Linear, or the first sheet when there is none.
	CentralSheet string
}

// Validate reports the first missing or invalid field as a ValidationError.
func (s Sources) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return errors.NewValidationError(fe.StructField(), fe.Value(), fmt.Sprintf("failed %q rule", fe.Tag()))
	}
	return errors.WrapValidation("sources", err)
}

// Inputs are the rows a run works on.
type Inputs struct {
	Entities      []datamodel.RawEntity
	Attributes    []datamodel.RawAttribute
	Relationships []datamodel.RawRelationship
	ObjectRows    []datamodel.SystemLabelRow
	AttributeRows []datamodel.SystemLabelRow
}

// Process reconciles the labels and resolves entities, attributes and
// relationships. Meta carries row counts only.
func Process(in Inputs) *datamodel.Bundle {
	objects, objectStats := reconcile.Labels(in.ObjectRows)
	attributes, attributeStats := reconcile.Labels(in.AttributeRows)

	return assemble(in,
		&reconcile.Result{Kind: datamodel.ObjectLabel, Labels: objects, Stats: objectStats},
		&reconcile.Result{Kind: datamodel.AttributeLabel, Labels: attributes, Stats: attributeStats},
	)
}

// assemble resolves the VP rows of in against reconciled labels. The label
// rows of in are not read.
func assemble(in Inputs, objects, attributes *reconcile.Result) *datamodel.Bundle {
	entities := resolve.Entities(in.Entities, objects.Labels)

	return &datamodel.Bundle{
		Entities:        entities,
		Attributes:      resolve.Attributes(in.Attributes, attributes.Labels, entities),
		Relationships:   resolve.Relationships(in.Relationships, in.Entities),
		ObjectLabels:    objects.Labels,
		AttributeLabels: attributes.Labels,
		Meta: datamodel.Meta{
			Stats: datamodel.Stats{
				RawEntities:      len(in.Entities),
				RawAttributes:    len(in.Attributes),
				RawRelationships: len(in.Relationships),
				ObjectLabels:     objects.Stats,
				AttributeLabels:  attributes.Stats,
				UnexpectedFlags:  len(resolve.UnexpectedFlags(in.Relationships)),
			},
		},
	}
}

// Run loads both workbooks through opener and processes them. A nil opener
// reads xlsx files from disk.
func Run(ctx context.Context, opener workbook.Opener, src Sources) (*datamodel.Bundle, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if opener == nil {
		opener = workbook.DefaultOpener
	}

	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.FromContext(ctx)
	logger.Info().
		Str("vp_file", src.VPFile).
		Str("central_doc", src.CentralDocFile).
		Msg("Starting pipeline run")

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := loadVP(ctx, opener, src.VPFile)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sheet, objects, attributes, err := loadCentral(ctx, opener, src)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	bundle := assemble(Inputs{
		Entities:      raw.Entities,
		Attributes:    raw.Attributes,
		Relationships: raw.Relationships,
	}, objects, attributes)
	bundle.Meta.RunID = runID
	bundle.Meta.GeneratedAt = utc.Now()
	bundle.Meta.VPFile = src.VPFile
	bundle.Meta.CentralDocFile = src.CentralDocFile
	bundle.Meta.CentralSheet = sheet

	warnAnomalies(logging.WithStage(ctx, "resolve"), bundle)

	logger.Info().
		Int("entities", len(bundle.Entities)).
		Int("attributes", len(bundle.Attributes)).
		Int("relationships", len(bundle.Relationships)).
		Int("object_labels", len(bundle.ObjectLabels)).
		Int("attribute_labels", len(bundle.AttributeLabels)).
		Msg("Pipeline run complete")

	return bundle, nil
}

func loadVP(ctx context.Context, opener workbook.Opener, path string) (*datamodel.RawTables, error) {
	ctx = logging.WithField(logging.WithStage(ctx, "load"), "source", types.VPExportID.String())
	r, err := opener(path)
	if err != nil {
		return nil, fmt.Errorf("opening VP export: %w", err)
	}
	defer r.Close() //nolint:errcheck // read-only workbook

	raw, err := workbook.LoadVP(r)
	if err != nil {
		return nil, fmt.Errorf("loading VP export: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Str("file", path).
		Int("entities", len(raw.Entities)).
		Int("attributes", len(raw.Attributes)).
		Int("relationships", len(raw.Relationships)).
		Msg("Loaded VP export")
	return raw, nil
}

func loadCentral(ctx context.Context, opener workbook.Opener, src Sources) (string, *reconcile.Result, *reconcile.Result, error) {
	r, err := opener(src.CentralDocFile)
	if err != nil {
		return "", nil, nil, fmt.Errorf("opening central document: %w", err)
	}
	defer r.Close() //nolint:errcheck // read-only workbook

	sheet := src.CentralSheet
	if sheet == "" {
		sheet, err = workbook.DefaultSheet(r.SheetList(), constants.DefaultCentralSheet)
		if err != nil {
			return "", nil, nil, errors.NewLoadError(src.CentralDocFile, "", err)
		}
	}
	ctx = logging.WithSheet(logging.WithStage(ctx, "reconcile"), src.CentralDocFile, sheet)
	ctx = logging.WithField(ctx, "source", types.CentralDocID.String())

	table, err := workbook.LoadCentral(r, sheet)
	if err != nil {
		return "", nil, nil, fmt.Errorf("loading central document: %w", err)
	}
	logger := logging.FromContext(ctx)
	logger.Debug().Int("rows", table.Len()).Msg("Loaded central document")

	objects, err := reconcile.ObjectLabels(table)
	if err != nil {
		return "", nil, nil, fmt.Errorf("reconciling object labels: %w", err)
	}
	attributes, err := reconcile.AttributeLabels(table)
	if err != nil {
		return "", nil, nil, fmt.Errorf("reconciling attribute labels: %w", err)
	}

	for _, res := range []*reconcile.Result{objects, attributes} {
		logger.Debug().Str("kind", string(res.Kind)).Msg(res.Summary())
		if !res.HasWarnings() {
			continue
		}
		for _, w := range res.Warnings() {
			logger.Warn().Str("kind", string(res.Kind)).Str("detail", w).Msg("Dropped central document rows")
		}
	}
	return sheet, objects, attributes, nil
}

func warnAnomalies(ctx context.Context, bundle *datamodel.Bundle) {
	if n := bundle.Meta.Stats.UnexpectedFlags; n > 0 {
		logging.FromContext(ctx).Warn().
			Int("count", n).
			Msg("Foreign keys with an Identifying flag other than Yes or No were treated as reference data tables")
	}
}
