package i18n

// Direction is the writing direction of a bundle.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Bundle is the read-only table of display strings for one language.
// Titles and Labels are keyed by calculator type ("ir", "tva", ...).
type Bundle struct {
	Code      string
	Direction Direction

	YLabel       string
	InvestXLabel string
	InvestYLabel string

	Titles map[string]string
	Labels map[string][]string
}

const defaultLang = "en"

var bundles = map[string]*Bundle{
	"en": {
		Code:         "en",
		Direction:    LTR,
		YLabel:       "Amount (MAD)",
		InvestXLabel: "Years",
		InvestYLabel: "Value (MAD)",
		Titles: map[string]string{
			"ir":     "Income Tax Breakdown",
			"is":     "Corporate Tax Breakdown",
			"tva":    "VAT Breakdown (TTC: {ttc:.2f} MAD)",
			"loan":   "Loan Cost Breakdown (Monthly: {monthly_payment:.2f} MAD)",
			"invest": "Investment Growth Over Time",
			"budget": "Budget Allocation (Income: {income:.2f} MAD)",
		},
		Labels: map[string][]string{
			"ir":     {"Gross Income", "Tax Before Credit (20%)", "Dependent Credit", "Net Tax"},
			"is":     {"Revenue", "Expenses", "Profit", "Corporate Tax (20%)"},
			"tva":    {"Amount HT", "TVA"},
			"loan":   {"Principal", "Total Interest"},
			"budget": {"Expenses", "Remaining"},
		},
	},
	"fr": {
		Code:         "fr",
		Direction:    LTR,
		YLabel:       "Montant (MAD)",
		InvestXLabel: "Années",
		InvestYLabel: "Valeur (MAD)",
		Titles: map[string]string{
			"ir":     "Décomposition de l'impôt sur le revenu",
			"is":     "Décomposition de l'impôt sur les sociétés",
			"tva":    "Décomposition de la TVA (TTC: {ttc:.2f} MAD)",
			"loan":   "Décomposition des coûts du prêt (Mensuel: {monthly_payment:.2f} MAD)",
			"invest": "Croissance de l'investissement au fil du temps",
			"budget": "Allocation du budget (Revenu: {income:.2f} MAD)",
		},
		Labels: map[string][]string{
			"ir":     {"Revenu brut", "Impôt avant crédit (20%)", "Crédit pour personnes à charge", "Impôt net"},
			"is":     {"Revenu", "Dépenses", "Bénéfice", "Impôt sur les sociétés (20%)"},
			"tva":    {"Montant HT", "TVA"},
			"loan":   {"Principal", "Intérêts totaux"},
			"budget": {"Dépenses", "Restant"},
		},
	},
	"ar": {
		Code:         "ar",
		Direction:    RTL,
		YLabel:       "المبلغ (MAD)",
		InvestXLabel: "السنوات",
		InvestYLabel: "القيمة (MAD)",
		Titles: map[string]string{
			"ir":     "تحليل الضريبة على الدخل",
			"is":     "تحليل الضريبة على الشركات",
			"tva":    "تحليل الضريبة على القيمة المضافة (TTC: {ttc:.2f} MAD)",
			"loan":   "تحليل تكاليف القرض (شهري: {monthly_payment:.2f} MAD)",
			"invest": "نمو الاستثمار مع مرور الوقت",
			"budget": "تخصيص الميزانية (الدخل: {income:.2f} MAD)",
		},
		Labels: map[string][]string{
			"ir":     {"الدخل الإجمالي", "الضريبة قبل الائتمان (20%)", "ائتمان المعالين", "الضريبة الصافية"},
			"is":     {"الإيرادات", "المصاريف", "الربح", "الضريبة على الشركات (20%)"},
			"tva":    {"المبلغ بدون الضريبة", "الضريبة على القيمة المضافة"},
			"loan":   {"الأصل", "الفوائد الإجمالية"},
			"budget": {"المصاريف", "المتبقي"},
		},
	},
}
