package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fanvault/backend/ent"
	"github.com/fanvault/backend/ent/commission"
	"github.com/fanvault/backend/pkg/domain"
	"github.com/fanvault/backend/pkg/logger"
)

// Service generates commission statement files. Statements are written to
// local storage and optionally mirrored to S3.
type Service struct {
	db          *ent.Client
	storagePath string
	s3Client    *s3.Client
	bucket      string
	log         logger.Logger
	printer     *message.Printer
}

// Config configures the export service
type Config struct {
	StoragePath string
	AWSRegion   string
	S3Bucket    string
}

// NewService creates a new export service. S3 upload is enabled only when a
// bucket is configured.
func NewService(db *ent.Client, cfg Config, log logger.Logger) (*Service, error) {
	if err := os.MkdirAll(cfg.StoragePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create statement storage: %w", err)
	}

	svc := &Service{
		db:          db,
		storagePath: cfg.StoragePath,
		bucket:      cfg.S3Bucket,
		log:         log,
		printer:     message.NewPrinter(language.English),
	}

	if cfg.S3Bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(cfg.AWSRegion),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		svc.s3Client = s3.NewFromConfig(awsCfg)
	}

	return svc, nil
}

// Statement describes a generated commission statement
type Statement struct {
	UserID    int       `json:"user_id"`
	Period    string    `json:"period"`
	Rows      int       `json:"rows"`
	Total     float64   `json:"total"`
	FilePath  string    `json:"file_path"`
	S3Key     string    `json:"s3_key,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// GenerateStatement writes an XLSX statement of the commissions a user earned
// in [from, to) and uploads it to S3 when a bucket is configured.
func (s *Service) GenerateStatement(ctx context.Context, userID int, from, to time.Time) (*Statement, error) {
	commissions, err := s.db.Commission.
		Query().
		Where(
			commission.RecipientUserIDEQ(userID),
			commission.CreatedAtGTE(from),
			commission.CreatedAtLT(to),
		).
		Order(ent.Asc(commission.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query statement commissions: %w", err)
	}
	if len(commissions) == 0 {
		return nil, domain.NewNotFoundError("commissions in period")
	}

	period := from.Format("2006-01")
	filename := fmt.Sprintf("statement-%d-%s-%s.xlsx", userID, period, time.Now().Format("20060102-150405"))
	path := filepath.Join(s.storagePath, filename)

	total, err := s.writeStatementFile(path, commissions)
	if err != nil {
		return nil, err
	}

	stmt := &Statement{
		UserID:    userID,
		Period:    period,
		Rows:      len(commissions),
		Total:     total,
		FilePath:  path,
		CreatedAt: time.Now(),
	}

	if s.s3Client != nil {
		key := fmt.Sprintf("statements/%d/%s", userID, filename)
		if err := s.uploadToS3(ctx, path, key); err != nil {
			// The local file is good; report the upload failure and move on.
			s.log.Warn("statement S3 upload failed", "user_id", userID, "key", key, "error", err)
		} else {
			stmt.S3Key = key
		}
	}

	return stmt, nil
}

// writeStatementFile renders the commission rows into an XLSX workbook
func (s *Service) writeStatementFile(path string, commissions []*ent.Commission) (float64, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Commissions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return 0, fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create style: %w", err)
	}

	headers := []string{
		"ID", "Date", "Tier", "Rate", "Base Amount", "Commission", "Currency",
		"Status", "Paid At",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	var total float64
	for rowIdx, c := range commissions {
		row := rowIdx + 2
		paidAt := ""
		if c.PaidAt != nil {
			paidAt = c.PaidAt.Format("2006-01-02")
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), c.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), c.CreatedAt.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), c.Tier)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), fmt.Sprintf("%.0f%%", c.CommissionRate*100))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), s.printer.Sprintf("%.2f", c.BaseAmount))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), s.printer.Sprintf("%.2f", c.CommissionAmount))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), c.Currency)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), string(c.Status))
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), paidAt)
		total += c.CommissionAmount
	}

	// Totals row under the data
	totalRow := len(commissions) + 3
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", totalRow), "Total")
	f.SetCellStyle(sheetName, fmt.Sprintf("E%d", totalRow), fmt.Sprintf("E%d", totalRow), headerStyle)
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", totalRow), s.printer.Sprintf("%.2f", total))

	for i := 0; i < len(headers); i++ {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 14)
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return 0, fmt.Errorf("failed to save statement: %w", err)
	}

	return total, nil
}

// uploadToS3 uploads a statement file to the configured bucket
func (s *Service) uploadToS3(ctx context.Context, localPath, key string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open statement file: %w", err)
	}
	defer file.Close()

	_, err = s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}
