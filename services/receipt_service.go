package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	config "github.com/fliqhq/fliq-backend/configs"
	"github.com/fliqhq/fliq-backend/models"
	"github.com/fliqhq/fliq-backend/notifications"
	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// GenerateBookingReceipt renders a PDF receipt for a completed booking,
// uploads it, and emails the download link to the client. Failures are
// logged and swallowed; the receipt is an enrichment, not part of the
// completion write.
func GenerateBookingReceipt(booking models.Booking) {
	htmlData, err := generateReceiptHTML(booking)
	if err != nil {
		log.Printf("🔥 Failed to generate receipt HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate receipt PDF: %v", err)
		return
	}

	uploadURL, err := uploadToCloudinary(pdfBytes, booking.Reference)
	if err != nil {
		log.Printf("🔥 Failed to upload receipt to Cloudinary: %v", err)
		return
	}

	notifications.SendEmail(
		booking.Client.FullName,
		booking.Client.Email,
		fmt.Sprintf("Your fliQ Receipt — %s", booking.Reference),
		fmt.Sprintf("<h1>Service Completed</h1><p>Thank you for using fliQ. Your receipt is ready.</p><p><a href='%s'>Download Receipt</a></p>", uploadURL),
	)
	log.Printf("✅ Generated receipt for booking %s.", booking.Reference)
}

func generateReceiptHTML(booking models.Booking) (string, error) {
	tmpl, err := template.ParseFiles("templates/receipt.html")
	if err != nil {
		return "", err
	}

	naira := message.NewPrinter(language.English)
	amount := booking.TotalAmount
	if booking.FinalAmount != nil {
		amount = *booking.FinalAmount
	}

	data := struct {
		Reference    string
		ClientName   string
		ProviderName string
		Category     string
		Location     string
		StartTime    string
		EndTime      string
		BaseAmount   string
		PlatformFee  string
		TotalAmount  string
	}{
		Reference:    booking.Reference,
		ClientName:   booking.Client.FullName,
		ProviderName: booking.Provider.User.FullName,
		Category:     booking.Category,
		Location:     booking.Location,
		StartTime:    booking.StartTime.Format("January 2, 2006 3:04 PM"),
		EndTime:      booking.EndTime.Format("January 2, 2006 3:04 PM"),
		BaseAmount:   naira.Sprintf("₦%d", booking.BaseAmount),
		PlatformFee:  naira.Sprintf("₦%d", booking.PlatformFee),
		TotalAmount:  naira.Sprintf("₦%d", amount),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadToCloudinary(fileBytes []byte, reference string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("receipts/%s_%s", reference, uuid.New().String()),
		Folder:       "fliq_receipts",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
