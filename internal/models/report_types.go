package models

// ReportType is one selectable category in the attendance report form.
type ReportType struct {
	Value string
	Label string
}

// ReportTypes lists the report categories in the order they appear in the
// form's select menu.
var ReportTypes = []ReportType{
	{Value: "sick", Label: "体調不良"},
	{Value: "late", Label: "遅刻"},
	{Value: "early_leave", Label: "早退"},
	{Value: "late_early_leave", Label: "遅刻+早退"},
	{Value: "paid_leave", Label: "有給休暇(全休)"},
	{Value: "paid_leave_am", Label: "有給休暇(午前休)"},
	{Value: "paid_leave_pm", Label: "有給休暇(午後休)"},
	{Value: "special_leave", Label: "特別休暇"},
	{Value: "absent", Label: "欠勤"},
	{Value: "other", Label: "その他"},
}

// Block and action IDs shared by the modal and the submission parser.
const (
	ReportCallbackID = "kintai_report"

	DateBlockID        = "date_block"
	DateActionID       = "date_picker"
	ReportTypeBlockID  = "report_type_block"
	ReportTypeActionID = "report_type"
	DetailsBlockID     = "details_block"
	DetailsActionID    = "details"
)

// NoDetails replaces an empty free-text detail.
const NoDetails = "詳細なし"

// Submission is a completed attendance report extracted from a view_submission.
type Submission struct {
	UserName        string
	UserID          string
	Date            string
	ReportTypeValue string
	ReportTypeLabel string
	Details         string
}
