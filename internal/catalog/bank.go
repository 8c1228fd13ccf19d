package catalog

import (
	"cogscreen_backend/internal/model"
	"cogscreen_backend/internal/scale"
)

func badl(item int, code, en, ar string, opts ...Option) Item {
	return Item{
		Code:     code,
		Type:     model.QuestionScale,
		TextEN:   en,
		TextAR:   ar,
		Options:  opts,
		Required: true,
		Scale:    &scale.Participation{Instrument: scale.BADL, Item: item},
	}
}

func gds(item int, dir scale.Direction, en, ar string) Item {
	return Item{
		Code:     code15(item),
		Type:     model.QuestionBoolean,
		TextEN:   en,
		TextAR:   ar,
		Options:  []Option{{EN: "Yes", AR: "نعم"}, {EN: "No", AR: "لا"}},
		Required: true,
		Scale:    &scale.Participation{Instrument: scale.Depression, Item: item, Direction: dir},
	}
}

func code15(item int) string {
	return "gds15_" + string(rune('a'+item-1))
}

var notApplicable = Option{EN: "Not applicable", AR: "لا ينطبق"}

// bank returns the screening protocol, groups in administration order.
func bank() []Group {
	return []Group{
		{
			Code:   "background",
			NameEN: "Background Information",
			NameAR: "معلومات أساسية",
			DescEN: "General information about the person being screened.",
			DescAR: "معلومات عامة عن الشخص الخاضع للفحص.",
			Items: []Item{
				{
					Code:     "bg_education_years",
					Type:     model.QuestionNumber,
					TextEN:   "How many years of formal education has the person completed?",
					TextAR:   "كم عدد سنوات التعليم النظامي التي أكملها الشخص؟",
					Required: true,
				},
				{
					Code:   "bg_lives_alone",
					Type:   model.QuestionBoolean,
					TextEN: "Does the person live alone?",
					TextAR: "هل يعيش الشخص بمفرده؟",
					Options: []Option{
						{EN: "Yes", AR: "نعم"},
						{EN: "No", AR: "لا"},
					},
					Required: true,
				},
				{
					Code:   "bg_symptom_onset",
					Type:   model.QuestionDate,
					TextEN: "When were memory or thinking problems first noticed?",
					TextAR: "متى لوحظت مشاكل الذاكرة أو التفكير لأول مرة؟",
				},
				{
					Code:   "bg_conditions",
					Type:   model.QuestionMultiSelect,
					TextEN: "Which of the following conditions does the person have?",
					TextAR: "أي من الحالات التالية يعاني منها الشخص؟",
					Options: []Option{
						{EN: "High blood pressure", AR: "ارتفاع ضغط الدم"},
						{EN: "Diabetes", AR: "السكري"},
						{EN: "Heart disease", AR: "أمراض القلب"},
						{EN: "Stroke", AR: "سكتة دماغية"},
						{EN: "Hearing or vision impairment", AR: "ضعف السمع أو البصر"},
						{EN: "None of the above", AR: "لا شيء مما سبق"},
					},
				},
				{
					Code:     "bg_main_concern",
					Type:     model.QuestionText,
					TextEN:   "What is the main concern that led to this screening?",
					TextAR:   "ما هو الشاغل الرئيسي الذي أدى إلى هذا الفحص؟",
					Required: true,
				},
			},
		},
		{
			Code:   "badl",
			NameEN: "Activities of Daily Living",
			NameAR: "أنشطة الحياة اليومية",
			DescEN: "For each activity, choose the statement that best describes the person over the last month.",
			DescAR: "لكل نشاط، اختر العبارة التي تصف حالة الشخص خلال الشهر الماضي.",
			Items: []Item{
				badl(1, "badl_food_prep",
					"Preparing food",
					"تحضير الطعام",
					Option{EN: "Chooses and prepares food appropriately", AR: "يختار الطعام ويحضره بشكل مناسب"},
					Option{EN: "Able to prepare food if ingredients set out", AR: "يستطيع تحضير الطعام إذا جُهزت المكونات"},
					Option{EN: "Can prepare food if prompted step by step", AR: "يستطيع تحضير الطعام إذا ذُكّر خطوة بخطوة"},
					Option{EN: "Unable to prepare food even with ingredients set out", AR: "غير قادر على تحضير الطعام حتى مع تجهيز المكونات"},
					notApplicable),
				badl(2, "badl_eating",
					"Eating",
					"تناول الطعام",
					Option{EN: "Eats appropriately using correct cutlery", AR: "يأكل بشكل مناسب مستخدماً أدوات المائدة الصحيحة"},
					Option{EN: "Eats appropriately if food is made manageable", AR: "يأكل بشكل مناسب إذا قُدم الطعام مهيأً"},
					Option{EN: "Uses fingers to eat food", AR: "يستخدم أصابعه لتناول الطعام"},
					Option{EN: "Needs to be fed", AR: "يحتاج إلى من يطعمه"},
					notApplicable),
				badl(3, "badl_drink_prep",
					"Preparing drinks",
					"تحضير المشروبات",
					Option{EN: "Prepares drinks appropriately", AR: "يحضر المشروبات بشكل مناسب"},
					Option{EN: "Prepares drinks if ingredients left out", AR: "يحضر المشروبات إذا تُركت المكونات جاهزة"},
					Option{EN: "Can prepare drinks if prompted step by step", AR: "يستطيع تحضير المشروبات إذا ذُكّر خطوة بخطوة"},
					Option{EN: "Unable to make a drink even with prompting", AR: "غير قادر على تحضير مشروب حتى مع التذكير"},
					notApplicable),
				badl(4, "badl_drinking",
					"Drinking",
					"تناول المشروبات",
					Option{EN: "Drinks appropriately", AR: "يشرب بشكل مناسب"},
					Option{EN: "Drinks appropriately with aids", AR: "يشرب بشكل مناسب بمساعدة أدوات"},
					Option{EN: "Does not drink appropriately even with aids", AR: "لا يشرب بشكل مناسب حتى مع الأدوات المساعدة"},
					Option{EN: "Has to have drinks administered", AR: "يحتاج إلى من يسقيه"},
					notApplicable),
				badl(5, "badl_dressing",
					"Dressing",
					"ارتداء الملابس",
					Option{EN: "Selects and wears clothes appropriately", AR: "يختار ملابسه ويرتديها بشكل مناسب"},
					Option{EN: "Puts clothes on in wrong order or back to front", AR: "يرتدي الملابس بترتيب خاطئ أو بالمقلوب"},
					Option{EN: "Unable to dress alone but moves limbs to assist", AR: "غير قادر على ارتداء الملابس بمفرده لكنه يحرك أطرافه للمساعدة"},
					Option{EN: "Unable to assist and requires total dressing", AR: "غير قادر على المساعدة ويحتاج إلى إلباس كامل"},
					notApplicable),
				badl(6, "badl_hygiene",
					"Personal hygiene",
					"النظافة الشخصية",
					Option{EN: "Washes regularly and independently", AR: "يغتسل بانتظام وبشكل مستقل"},
					Option{EN: "Can wash if given soap and towel", AR: "يستطيع الاغتسال إذا أُعطي الصابون والمنشفة"},
					Option{EN: "Can wash if prompted and supervised", AR: "يستطيع الاغتسال إذا ذُكّر وتحت الإشراف"},
					Option{EN: "Unable to wash and needs full assistance", AR: "غير قادر على الاغتسال ويحتاج إلى مساعدة كاملة"},
					notApplicable),
				badl(7, "badl_teeth",
					"Cleaning teeth",
					"تنظيف الأسنان",
					Option{EN: "Cleans own teeth or dentures regularly and independently", AR: "ينظف أسنانه أو طقم أسنانه بانتظام وبشكل مستقل"},
					Option{EN: "Cleans teeth if given appropriate items", AR: "ينظف أسنانه إذا أُعطي الأدوات المناسبة"},
					Option{EN: "Requires some assistance", AR: "يحتاج إلى بعض المساعدة"},
					Option{EN: "Full assistance given", AR: "يحتاج إلى مساعدة كاملة"},
					notApplicable),
				badl(8, "badl_bathing",
					"Bathing or showering",
					"الاستحمام",
					Option{EN: "Bathes regularly and independently", AR: "يستحم بانتظام وبشكل مستقل"},
					Option{EN: "Needs bath drawn or shower turned on but washes independently", AR: "يحتاج إلى تجهيز الحمام لكنه يغتسل بشكل مستقل"},
					Option{EN: "Needs supervision and prompting to wash", AR: "يحتاج إلى إشراف وتذكير للاغتسال"},
					Option{EN: "Totally dependent, needs full assistance", AR: "يعتمد كلياً على الآخرين ويحتاج إلى مساعدة كاملة"},
					notApplicable),
				badl(9, "badl_toilet",
					"Using the toilet",
					"استخدام المرحاض",
					Option{EN: "Uses toilet appropriately when needed", AR: "يستخدم المرحاض بشكل مناسب عند الحاجة"},
					Option{EN: "Needs to be taken to the toilet", AR: "يحتاج إلى من يأخذه إلى المرحاض"},
					Option{EN: "Incontinent of urine or faeces", AR: "سلس في البول أو البراز"},
					Option{EN: "Incontinent of both urine and faeces", AR: "سلس في البول والبراز معاً"},
					notApplicable),
				badl(10, "badl_transfers",
					"Moving between chair and standing",
					"الانتقال من الجلوس إلى الوقوف",
					Option{EN: "Gets in and out of chairs unaided", AR: "يجلس وينهض من الكرسي دون مساعدة"},
					Option{EN: "Can get into a chair but needs help to get out", AR: "يستطيع الجلوس لكنه يحتاج إلى مساعدة للنهوض"},
					Option{EN: "Needs help getting in and out of chairs", AR: "يحتاج إلى مساعدة في الجلوس والنهوض"},
					Option{EN: "Totally dependent on being transferred", AR: "يعتمد كلياً على الآخرين في الانتقال"},
					notApplicable),
				badl(11, "badl_mobility",
					"Walking",
					"المشي",
					Option{EN: "Walks independently", AR: "يمشي بشكل مستقل"},
					Option{EN: "Walks with assistance such as furniture or an arm for support", AR: "يمشي مستنداً إلى الأثاث أو ذراع شخص"},
					Option{EN: "Uses aids such as a frame to get around", AR: "يستخدم أدوات مساعدة مثل المشاية للتنقل"},
					Option{EN: "Unable to walk", AR: "غير قادر على المشي"},
					notApplicable),
				badl(12, "badl_time",
					"Orientation to time",
					"الإدراك الزمني",
					Option{EN: "Fully aware of time of day, day of week and date", AR: "مدرك تماماً لوقت اليوم ويوم الأسبوع والتاريخ"},
					Option{EN: "Unaware of time of day or day of week but seems unconcerned", AR: "غير مدرك لوقت اليوم أو يوم الأسبوع لكنه لا يبدو منزعجاً"},
					Option{EN: "Repeatedly asks the time, day or date", AR: "يسأل بشكل متكرر عن الوقت أو اليوم أو التاريخ"},
					Option{EN: "Mixes up night and day", AR: "يخلط بين الليل والنهار"},
					notApplicable),
				badl(13, "badl_space",
					"Orientation to place",
					"الإدراك المكاني",
					Option{EN: "Fully orientated to surroundings", AR: "مدرك تماماً لما حوله"},
					Option{EN: "Orientated to familiar surroundings only", AR: "مدرك للأماكن المألوفة فقط"},
					Option{EN: "Gets lost in own home, needs reminding where rooms are", AR: "يضيع داخل منزله ويحتاج إلى تذكير بأماكن الغرف"},
					Option{EN: "Does not recognise own home and attempts to leave", AR: "لا يتعرف على منزله ويحاول المغادرة"},
					notApplicable),
				badl(14, "badl_communication",
					"Communication",
					"التواصل",
					Option{EN: "Able to hold appropriate conversation", AR: "قادر على إجراء محادثة مناسبة"},
					Option{EN: "Shows understanding and attempts to respond with gestures", AR: "يُظهر فهماً ويحاول الرد بالإيماءات"},
					Option{EN: "Can make self understood but has difficulty understanding others", AR: "يستطيع إيصال ما يريد لكنه يجد صعوبة في فهم الآخرين"},
					Option{EN: "Does not respond to or communicate with others", AR: "لا يستجيب للآخرين ولا يتواصل معهم"},
					notApplicable),
				badl(15, "badl_telephone",
					"Using the telephone",
					"استخدام الهاتف",
					Option{EN: "Uses telephone appropriately, including finding numbers", AR: "يستخدم الهاتف بشكل مناسب بما في ذلك إيجاد الأرقام"},
					Option{EN: "Uses telephone if number given verbally or written down", AR: "يستخدم الهاتف إذا أُعطي الرقم شفهياً أو مكتوباً"},
					Option{EN: "Answers telephone but does not make calls", AR: "يجيب على الهاتف لكنه لا يجري مكالمات"},
					Option{EN: "Unable to use the telephone at all", AR: "غير قادر على استخدام الهاتف إطلاقاً"},
					notApplicable),
				badl(16, "badl_housework",
					"Housework or gardening",
					"الأعمال المنزلية أو البستنة",
					Option{EN: "Able to do housework or gardening to previous standard", AR: "قادر على القيام بالأعمال المنزلية أو البستنة بمستواه السابق"},
					Option{EN: "Able to do housework or gardening but not to previous standard", AR: "قادر على القيام بها لكن ليس بمستواه السابق"},
					Option{EN: "Limited participation even with a lot of supervision", AR: "مشاركة محدودة حتى مع إشراف كبير"},
					Option{EN: "Unwilling or unable to participate in former activities", AR: "غير راغب أو غير قادر على المشاركة في أنشطته السابقة"},
					notApplicable),
				badl(17, "badl_shopping",
					"Shopping",
					"التسوق",
					Option{EN: "Shops to previous standard", AR: "يتسوق بمستواه السابق"},
					Option{EN: "Only able to shop for one or two items, with or without a list", AR: "يستطيع شراء صنف أو صنفين فقط بقائمة أو بدونها"},
					Option{EN: "Unable to shop alone but participates when accompanied", AR: "غير قادر على التسوق بمفرده لكنه يشارك برفقة أحد"},
					Option{EN: "Unable to participate in shopping even when accompanied", AR: "غير قادر على المشاركة في التسوق حتى برفقة أحد"},
					notApplicable),
				badl(18, "badl_finances",
					"Handling finances",
					"إدارة الشؤون المالية",
					Option{EN: "Responsible for own finances at previous level", AR: "مسؤول عن شؤونه المالية بمستواه السابق"},
					Option{EN: "Unable to write a cheque but can sign and recognises money values", AR: "لا يستطيع تحرير شيك لكنه يوقع ويميز قيم النقود"},
					Option{EN: "Can sign name but cannot recognise money values", AR: "يستطيع التوقيع لكنه لا يميز قيم النقود"},
					Option{EN: "Unable to sign name or recognise money values", AR: "غير قادر على التوقيع أو تمييز قيم النقود"},
					notApplicable),
				badl(19, "badl_hobbies",
					"Games and hobbies",
					"الألعاب والهوايات",
					Option{EN: "Pursues pastimes at previous level", AR: "يمارس هواياته بمستواه السابق"},
					Option{EN: "Pursues pastimes but needs encouragement", AR: "يمارس هواياته لكنه يحتاج إلى تشجيع"},
					Option{EN: "Reluctant to join in, very slow, needs coaxing", AR: "متردد في المشاركة وبطيء جداً ويحتاج إلى إقناع"},
					Option{EN: "No longer able or willing to join in", AR: "لم يعد قادراً أو راغباً في المشاركة"},
					notApplicable),
				badl(20, "badl_transport",
					"Using transport",
					"استخدام وسائل النقل",
					Option{EN: "Able to drive, cycle or use public transport independently", AR: "قادر على القيادة أو استخدام وسائل النقل العامة بشكل مستقل"},
					Option{EN: "Unable to drive but uses public transport or bike", AR: "غير قادر على القيادة لكنه يستخدم النقل العام أو الدراجة"},
					Option{EN: "Unable to use public transport alone", AR: "غير قادر على استخدام النقل العام بمفرده"},
					Option{EN: "Unable or unwilling to use transport even when accompanied", AR: "غير قادر أو غير راغب في استخدام وسائل النقل حتى برفقة أحد"},
					notApplicable),
			},
		},
		{
			Code:   "staging",
			NameEN: "Global Functional Stage",
			NameAR: "المرحلة الوظيفية العامة",
			DescEN: "Select the single stage that best describes the person's overall condition.",
			DescAR: "اختر المرحلة الواحدة التي تصف الحالة العامة للشخص بشكل أفضل.",
			Items: []Item{
				{
					Code:   "stage_global",
					Type:   model.QuestionSingleSelect,
					TextEN: "Which stage best describes the person's current level of cognitive function?",
					TextAR: "ما المرحلة التي تصف المستوى الحالي للوظائف المعرفية للشخص بشكل أفضل؟",
					Options: []Option{
						{EN: "1 - No cognitive decline", AR: "١ - لا يوجد تدهور معرفي"},
						{EN: "2 - Very mild decline, subjective forgetfulness", AR: "٢ - تدهور طفيف جداً، نسيان ذاتي"},
						{EN: "3 - Mild decline, noticed by close contacts", AR: "٣ - تدهور خفيف يلاحظه المقربون"},
						{EN: "4 - Moderate decline, clear on interview", AR: "٤ - تدهور معتدل واضح في المقابلة"},
						{EN: "5 - Moderately severe decline, needs some assistance", AR: "٥ - تدهور متوسط الشدة، يحتاج إلى بعض المساعدة"},
						{EN: "6 - Severe decline, needs substantial assistance", AR: "٦ - تدهور شديد، يحتاج إلى مساعدة كبيرة"},
						{EN: "7 - Very severe decline, loss of speech and movement", AR: "٧ - تدهور شديد جداً مع فقدان الكلام والحركة"},
					},
					Required: true,
					Scale:    &scale.Participation{Instrument: scale.Stage, Item: 1},
				},
			},
		},
		{
			Code:   "depression",
			NameEN: "Mood Screening",
			NameAR: "فحص المزاج",
			DescEN: "Answer yes or no as the person has felt over the past week.",
			DescAR: "أجب بنعم أو لا حسب شعور الشخص خلال الأسبوع الماضي.",
			Items: []Item{
				gds(1, scale.NoScoresOne,
					"Are you basically satisfied with your life?",
					"هل أنت راضٍ عن حياتك بشكل عام؟"),
				gds(2, scale.YesScoresOne,
					"Have you dropped many of your activities and interests?",
					"هل تخليت عن كثير من أنشطتك واهتماماتك؟"),
				gds(3, scale.YesScoresOne,
					"Do you feel that your life is empty?",
					"هل تشعر بأن حياتك فارغة؟"),
				gds(4, scale.YesScoresOne,
					"Do you often get bored?",
					"هل تشعر بالملل كثيراً؟"),
				gds(5, scale.NoScoresOne,
					"Are you in good spirits most of the time?",
					"هل أنت في مزاج جيد معظم الوقت؟"),
				gds(6, scale.YesScoresOne,
					"Are you afraid that something bad is going to happen to you?",
					"هل تخشى أن يحدث لك شيء سيء؟"),
				gds(7, scale.NoScoresOne,
					"Do you feel happy most of the time?",
					"هل تشعر بالسعادة معظم الوقت؟"),
				gds(8, scale.YesScoresOne,
					"Do you often feel helpless?",
					"هل تشعر كثيراً بالعجز؟"),
				gds(9, scale.YesScoresOne,
					"Do you prefer to stay at home rather than going out and doing new things?",
					"هل تفضل البقاء في المنزل بدلاً من الخروج وممارسة أشياء جديدة؟"),
				gds(10, scale.YesScoresOne,
					"Do you feel you have more problems with memory than most people?",
					"هل تشعر بأن لديك مشاكل في الذاكرة أكثر من معظم الناس؟"),
				gds(11, scale.NoScoresOne,
					"Do you think it is wonderful to be alive now?",
					"هل تعتقد أنه من الرائع أن تكون على قيد الحياة الآن؟"),
				gds(12, scale.YesScoresOne,
					"Do you feel pretty worthless the way you are now?",
					"هل تشعر بأنك عديم القيمة في وضعك الحالي؟"),
				gds(13, scale.NoScoresOne,
					"Do you feel full of energy?",
					"هل تشعر بأنك مفعم بالحيوية؟"),
				gds(14, scale.YesScoresOne,
					"Do you feel that your situation is hopeless?",
					"هل تشعر بأن وضعك ميؤوس منه؟"),
				gds(15, scale.YesScoresOne,
					"Do you think that most people are better off than you are?",
					"هل تعتقد أن حال معظم الناس أفضل من حالك؟"),
			},
		},
	}
}
