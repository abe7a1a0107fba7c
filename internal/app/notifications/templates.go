package notifications

import "github.com/kaan/etdtrack/internal/app/models"

// Fixed message templates, one per workflow event. Placeholders are
// filled by the dispatcher; the sender address and contact lines come
// from configuration so the templates stay testable and localizable.

const acceptSubject = "Dissertation Submission Approved"

const acceptTemplate = `Dear {first_name} {last_name},

The manuscript of your dissertation, "{title}", satisfies all of the Graduate School's formatting requirements.

If you have not already done so, please submit all required paperwork to fulfill your completion requirements. As this paperwork is received, you will be notified (via the email address stored in your profile) and the Graduate School will update your completion checklist.

Sincerely,
The Graduate School`

const rejectSubject = "Dissertation Submission Rejected"

const rejectTemplate = `Dear {first_name} {last_name},

Your dissertation, "{title}", needs revision before it can be accepted by the Graduate School. The details of these required revisions are below:

{issues}

Please resubmit your dissertation once you have addressed the issues above. If you have any questions about these issues, please contact the Graduate School at {contact}.

Sincerely,
The Graduate School`

const paperworkTemplate = `Dear {first_name} {last_name},

Your {snippet} received by the Graduate School on {now}.

Please submit any outstanding paperwork that is required to fulfill your completion requirements. As this paperwork is received, you will be notified (via the email address stored in your profile) and the Graduate School will update your completion checklist.

Sincerely,
The Graduate School`

const completeSubject = "Submission Process Complete"

const completeTemplate = `Dear {first_name} {last_name},

Congratulations! Your dissertation, {title}, and all of the paperwork associated with your completion requirements have been received by the Graduate School. An official, written notification regarding the completion of your doctoral degree will be sent to you in the coming days (this email is automatically generated and, as such, is not an official communication).

If you have questions or concerns about your completion, please contact the Graduate School at {contact}.

Congratulations again on your accomplishment.

Sincerely,
The Graduate School`

// paperworkInfo maps each checklist item to its email subject and the
// snippet spliced into the paperwork template.
var paperworkInfo = map[models.ChecklistItem]struct {
	subject string
	snippet string
}{
	models.ItemDissertationFee:  {"Dissertation Fee", "Cashier's Office receipt was"},
	models.ItemBursarReceipt:    {"Bursar's Letter", "Bursar's Office letter of clearance was"},
	models.ItemExitSurvey:       {"Graduate Exit Survey", "graduate exit survey was"},
	models.ItemEarnedDocsSurvey: {"Survey of Earned Doctorates", "Survey of Earned Doctorates was"},
	models.ItemPagesSubmitted:   {"Signature Pages", "signature, abstract, and title pages were"},
}
