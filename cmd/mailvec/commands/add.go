// ABOUTME: CLI command to embed and store an email message
// ABOUTME: Handles body from argument, file, or stdin plus metadata flags
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/mailvec/internal/models"
	"github.com/joho/godotenv"
)

var (
	addMessageID string
	addSubject   string
	addSender    string
	addFile      string
	addThreadID  string
	addCategory  string
	addPriority  string
	addTimestamp string
)

// NewAddCmd creates add command
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [body]",
		Short: "Embed and store an email message",
		Long: `Embed an email message and store it for similarity search.

The body comes from the argument, --file, or stdin. Storing the same
message id again appends a new record; it does not replace the old one.

Examples:
  mailvec add --id msg-123 --subject "Q3 budget" --from alice@example.com "Please review the attached budget"
  mailvec add --id msg-124 --from bob@example.com --category work --file body.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().StringVar(&addMessageID, "id", "", "Message id from the mail source (required)")
	cmd.Flags().StringVar(&addSubject, "subject", "", "Message subject")
	cmd.Flags().StringVar(&addSender, "from", "", "Sender address")
	cmd.Flags().StringVar(&addFile, "file", "", "Read body from file")
	cmd.Flags().StringVar(&addThreadID, "thread", "", "Thread id")
	cmd.Flags().StringVar(&addCategory, "category", "", "Category: work, personal, finance, travel, newsletter, other")
	cmd.Flags().StringVar(&addPriority, "priority", "", "Priority label")
	cmd.Flags().StringVar(&addTimestamp, "time", "", "Message timestamp (RFC 3339, default now)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	// Get message body
	var body string
	if addFile != "" {
		data, err := os.ReadFile(addFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		body = string(data)
	} else if len(args) > 0 {
		body = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		body = string(data)
	}

	body = strings.TrimSpace(body)
	if body == "" && addSubject == "" {
		return fmt.Errorf("no text provided")
	}

	category, err := models.ParseCategory(addCategory)
	if err != nil {
		return err
	}

	timestamp := time.Now()
	if addTimestamp != "" {
		timestamp, err = time.Parse(time.RFC3339, addTimestamp)
		if err != nil {
			return fmt.Errorf("parsing --time: %w", err)
		}
	}

	engine, closeEngine, err := openEngine()
	if err != nil {
		return err
	}
	defer closeEngine()

	msg := &models.EmailMessage{
		ID:        addMessageID,
		Subject:   addSubject,
		From:      addSender,
		Body:      body,
		Timestamp: timestamp,
		ThreadID:  addThreadID,
	}

	recordID, err := engine.StoreMessage(cmd.Context(), msg, "", category, addPriority)
	if err != nil {
		return fmt.Errorf("storing message: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Stored %s as %s\n", addMessageID, recordID)
	}
	return nil
}
