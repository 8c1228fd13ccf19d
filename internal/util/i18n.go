package util

import "cogscreen_backend/internal/model"

// Server-side message catalog for the two supported questionnaire
// languages. Only error and notification essentials live here; form
// rendering strings come from the question catalog itself.
var translations = map[model.Language]map[string]string{
	model.LanguageEnglish: {
		"error.validation":         "The submitted answers are invalid.",
		"error.duplicate_response": "This question has already been answered.",
		"error.invalid_transition": "This status change is not allowed.",
		"error.incomplete_review":  "Review notes are required before completing the review.",
		"error.review_conflict":    "The assessment was changed by another reviewer. Please reload and try again.",
		"error.patient_not_found":  "Patient record not found.",
		"event.submitted":          "The screening has been submitted and is awaiting clinical review.",
		"event.review_required":    "A submitted screening requires clinical review.",
		"event.completed":          "The clinical review has been completed.",
	},
	model.LanguageArabic: {
		"error.validation":         "الإجابات المرسلة غير صالحة.",
		"error.duplicate_response": "تمت الإجابة على هذا السؤال مسبقاً.",
		"error.invalid_transition": "تغيير الحالة هذا غير مسموح به.",
		"error.incomplete_review":  "ملاحظات المراجعة مطلوبة قبل إكمال المراجعة.",
		"error.review_conflict":    "تم تعديل التقييم من قبل مراجع آخر. يرجى إعادة التحميل والمحاولة مرة أخرى.",
		"error.patient_not_found":  "لم يتم العثور على سجل المريض.",
		"event.submitted":          "تم إرسال الفحص وهو في انتظار المراجعة السريرية.",
		"event.review_required":    "هناك فحص مرسل يتطلب مراجعة سريرية.",
		"event.completed":          "اكتملت المراجعة السريرية.",
	},
}

// T returns the message for key in lang, falling back to English, then to
// the key itself.
func T(lang model.Language, key string) string {
	if m, ok := translations[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := translations[model.LanguageEnglish][key]; ok {
		return v
	}
	return key
}
