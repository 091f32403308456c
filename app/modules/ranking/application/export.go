package rankingservice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// ExportRankings renders the full current standings as an XLSX workbook with
// one row per team.
func (s *RankingService) ExportRankings(ctx context.Context, season int) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, "ExportRankings")
	defer span.End()

	entries, err := s.GetCurrentRankings(ctx, season, 0)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Rankings"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create rankings sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := []string{"Rank", "Team", "Rating", "W", "L", "SOS", "SOS Rank"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, entry := range entries {
		row := i + 2
		values := []any{entry.Rank, entry.Team, entry.Rating, entry.Wins, entry.Losses, entry.SOS, entry.SOSRank}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize rankings workbook: %w", err)
	}

	s.logger.InfoContext(ctx, "Exported rankings workbook",
		slog.Int("season", season),
		slog.Int("teams", len(entries)),
	)
	return buf.Bytes(), nil
}
