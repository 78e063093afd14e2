package health

import "codeberg.org/snonux/shabdsetu/internal/language"

// ConditionInfo holds the knowledge base entry for one condition.
type ConditionInfo struct {
	Symptoms     string
	Causes       string
	HomeRemedies string
	Medicines    string
	Warning      string
}

// healthKeywords trigger health-intent detection. The English list is
// matched against lowercased input; the Marathi list against the raw text.
var healthKeywordsEN = []string{
	"fever", "cold", "cough", "headache", "pain", "ache", "sick", "ill",
	"disease", "symptom", "medicine", "doctor", "treatment", "cure",
	"diabetes", "blood pressure", "hypertension", "stomach", "diarrhea",
	"vomit", "nausea", "dizzy", "weakness", "tired", "infection",
	"health", "medical", "remedy", "tablet", "drug",
}

var healthKeywordsMR = []string{
	"ताप", "सर्दी", "खोकला", "डोकेदुखी", "दुखणे", "आजारी", "रोग",
	"लक्षण", "औषध", "डॉक्टर", "उपचार", "इलाज", "मधुमेह", "रक्तदाब",
	"पोट", "अतिसार", "उलटी", "मळमळ", "चक्कर", "कमकुवत", "थकवा",
	"संसर्ग", "आरोग्य", "वैद्यकीय", "उपाय", "गोळी",
}

// conditionKeywords map a condition name to the query words that select it.
var conditionKeywords = map[language.Language]map[string][]string{
	language.English: {
		"fever":        {"fever", "temperature", "hot body", "burning"},
		"cold":         {"cold", "runny nose", "sneezing"},
		"cough":        {"cough", "coughing", "throat"},
		"headache":     {"headache", "head pain", "migraine"},
		"stomach_pain": {"stomach", "belly", "abdomen", "tummy"},
		"diarrhea":     {"diarrhea", "loose motion", "loose stool"},
		"diabetes":     {"diabetes", "sugar", "blood sugar"},
		"hypertension": {"blood pressure", "bp", "hypertension"},
	},
	language.Marathi: {
		"ताप":          {"ताप", "तापमान", "गरम शरीर"},
		"सर्दी":        {"सर्दी", "नाक वाहणे", "शिंका"},
		"खोकला":        {"खोकला", "घसा"},
		"डोकेदुखी":     {"डोकेदुखी", "डोके दुखणे"},
		"पोटदुखी":      {"पोट", "पोटदुखी", "ओटीपोट"},
		"अतिसार":       {"अतिसार", "जुलाब"},
		"मधुमेह":       {"मधुमेह", "साखर", "शुगर"},
		"उच्च_रक्तदाब": {"रक्तदाब", "बीपी", "उच्च रक्तदाब"},
	},
}

// knowledgeBase holds curated information for common conditions in both
// languages. Content is intentionally simple: the audience is low-literate
// users who need plain guidance, not clinical detail.
var knowledgeBase = map[language.Language]map[string]ConditionInfo{
	language.English: {
		"fever": {
			Symptoms:     "High body temperature, chills, sweating, headache, muscle pain, weakness",
			Causes:       "Viral infection, bacterial infection, heat exhaustion, inflammatory conditions",
			HomeRemedies: "Rest, drink plenty of water, use cold compress, wear light clothing",
			Medicines:    "Paracetamol (500-1000mg every 6 hours), Ibuprofen (200-400mg every 6 hours)",
			Warning:      "Consult doctor if fever above 103°F (39.4°C) or lasts more than 3 days",
		},
		"cold": {
			Symptoms:     "Runny nose, sore throat, cough, sneezing, mild fever, congestion",
			Causes:       "Viral infection, weather change, weak immunity",
			HomeRemedies: "Rest, warm liquids, steam inhalation, gargle with salt water, honey and ginger",
			Medicines:    "Cetirizine, Paracetamol, Vitamin C",
			Warning:      "See doctor if symptoms worsen after 7 days or breathing difficulty occurs",
		},
		"cough": {
			Symptoms:     "Dry or wet cough, throat irritation, chest discomfort",
			Causes:       "Cold, flu, allergies, smoking, pollution, asthma",
			HomeRemedies: "Warm water with honey, steam inhalation, avoid cold drinks, stay hydrated",
			Medicines:    "Cough syrup (as per type - dry or wet), lozenges",
			Warning:      "Consult doctor if cough persists beyond 3 weeks or blood in cough",
		},
		"headache": {
			Symptoms:     "Pain in head, pressure in temples, sensitivity to light or sound",
			Causes:       "Stress, dehydration, lack of sleep, eye strain, tension",
			HomeRemedies: "Rest in quiet dark room, cold compress, hydration, gentle head massage",
			Medicines:    "Paracetamol, Aspirin, Ibuprofen",
			Warning:      "Seek immediate help if sudden severe headache with vision changes or confusion",
		},
		"stomach_pain": {
			Symptoms:     "Abdominal pain, cramping, bloating, nausea",
			Causes:       "Indigestion, gas, food poisoning, acidity, infection",
			HomeRemedies: "Light food, ginger tea, avoid spicy food, warm compress on stomach",
			Medicines:    "Antacid, ORS, Digene",
			Warning:      "Emergency if severe pain, vomiting blood, or pain with fever",
		},
		"diarrhea": {
			Symptoms:     "Loose watery stools, abdominal cramps, urgency, dehydration",
			Causes:       "Food poisoning, contaminated water, viral infection, spoiled food",
			HomeRemedies: "ORS solution, boiled rice water, banana, curd, avoid milk and spicy food",
			Medicines:    "ORS packets, Loperamide (if needed), Zinc tablets",
			Warning:      "See doctor if blood in stool, severe dehydration, or lasts more than 2 days",
		},
		"diabetes": {
			Symptoms:     "Increased thirst, frequent urination, fatigue, blurred vision, slow healing",
			Causes:       "Insulin deficiency, lifestyle, genetics, obesity",
			HomeRemedies: "Regular exercise, balanced diet, avoid sugar, manage stress, regular monitoring",
			Medicines:    "Consult doctor for proper medication (Metformin, Insulin etc)",
			Warning:      "This is chronic condition - requires regular medical supervision",
		},
		"hypertension": {
			Symptoms:     "Often no symptoms, sometimes headache, dizziness, chest pain",
			Causes:       "Stress, salt intake, obesity, lack of exercise, genetics",
			HomeRemedies: "Reduce salt, regular exercise, weight management, stress reduction, meditation",
			Medicines:    "Consult doctor for prescription (ACE inhibitors, Beta blockers etc)",
			Warning:      "Silent killer - requires regular BP monitoring and medical care",
		},
	},
	language.Marathi: {
		"ताप": {
			Symptoms:     "शरीराचे तापमान वाढणे, थंडी वाजणे, घाम येणे, डोकेदुखी, स्नायूंमध्ये दुखणे, अशक्तपणा",
			Causes:       "विषाणूजन्य संसर्ग, जीवाणूजन्य संसर्ग, उष्णतेचा थकवा, दाहक स्थिती",
			HomeRemedies: "विश्रांती घ्या, भरपूर पाणी प्या, थंड पट्टी वापरा, हलके कपडे घाला",
			Medicines:    "पॅरासिटामॉल (500-1000 मिग्रॅ दर 6 तासांनी), आयब्युप्रोफेन (200-400 मिग्रॅ दर 6 तासांनी)",
			Warning:      "ताप 103°F (39.4°C) पेक्षा जास्त असेल किंवा 3 दिवसांपेक्षा जास्त काळ राहिल्यास डॉक्टरांचा सल्ला घ्या",
		},
		"सर्दी": {
			Symptoms:     "नाक वाहणे, घसा दुखणे, खोकला, शिंका येणे, हलका ताप, नाक बंद होणे",
			Causes:       "विषाणूजन्य संसर्ग, हवामान बदल, कमकुवत रोगप्रतिकारक शक्ती",
			HomeRemedies: "विश्रांती, कोमट पाणी, वाफ घेणे, मिठाच्या पाण्याने गार्गल करा, मध आणि आले",
			Medicines:    "सेटिरिझिन, पॅरासिटामॉल, व्हिटॅमिन सी",
			Warning:      "7 दिवसांनंतर लक्षणे वाढल्यास किंवा श्वास घेण्यास त्रास झाल्यास डॉक्टर भेटा",
		},
		"खोकला": {
			Symptoms:     "कोरडा किंवा ओला खोकला, घसा खवखवणे, छातीत अस्वस्थता",
			Causes:       "सर्दी, फ्लू, ऍलर्जी, धूम्रपान, प्रदूषण, दमा",
			HomeRemedies: "मधासह कोमट पाणी, वाफ घेणे, थंड पेये टाळा, हायड्रेटेड रहा",
			Medicines:    "खोकल्याचे सिरप (प्रकारानुसार - कोरडे किंवा ओले), लॉझेंजेस",
			Warning:      "खोकला 3 आठवड्यांपेक्षा जास्त काळ राहिल्यास किंवा खोकल्यात रक्त आल्यास डॉक्टरांचा सल्ला घ्या",
		},
		"डोकेदुखी": {
			Symptoms:     "डोक्यात दुखणे, कानात दाब, प्रकाश किंवा आवाजास संवेदनशीलता",
			Causes:       "तणाव, निर्जलीकरण, झोप कमी, डोळ्यांचा ताण",
			HomeRemedies: "शांत अंधाऱ्या खोलीत विश्रांती, थंड पट्टी, पाणी पिणे, हलके डोके मसाज",
			Medicines:    "पॅरासिटामॉल, ऍस्पिरिन, आयब्युप्रोफेन",
			Warning:      "अचानक तीव्र डोकेदुखी दृष्टी बदलासह किंवा गोंधळासह असल्यास तात्काळ मदत घ्या",
		},
		"पोटदुखी": {
			Symptoms:     "ओटीपोटात दुखणे, पोटात मुरगळणे, फुगणे, मळमळ",
			Causes:       "अपचन, गॅस, अन्न विषबाधा, आम्लपित्त, संसर्ग",
			HomeRemedies: "हलके अन्न, आल्याचा चहा, मसालेदार अन्न टाळा, पोटावर कोमट पट्टी",
			Medicines:    "अँटासिड, ओआरएस, डायजीन",
			Warning:      "तीव्र वेदना, रक्त उलटी किंवा तापासह वेदना असल्यास आपत्कालीन",
		},
		"अतिसार": {
			Symptoms:     "पाणी सारखी विष्ठा, ओटीपोटात मुरगळणे, तातडीने शौच जाण्याची गरज, निर्जलीकरण",
			Causes:       "अन्न विषबाधा, दूषित पाणी, विषाणूजन्य संसर्ग, खराब झालेले अन्न",
			HomeRemedies: "ओआरएस द्रावण, उकडलेल्या तांदळाचे पाणी, केळी, दही, दूध आणि मसालेदार अन्न टाळा",
			Medicines:    "ओआरएस पाकीट, लोपेरामाइड (आवश्यक असल्यास), झिंक गोळ्या",
			Warning:      "विष्ठेत रक्त, तीव्र निर्जलीकरण किंवा 2 दिवसांपेक्षा जास्त काळ असल्यास डॉक्टर भेटा",
		},
		"मधुमेह": {
			Symptoms:     "वाढलेली तहान, वारंवार लघवी होणे, थकवा, अंधुक दृष्टी, जखमा मंद बऱ्या होणे",
			Causes:       "इन्सुलिनची कमतरता, जीवनशैली, आनुवंशिकता, लठ्ठपणा",
			HomeRemedies: "नियमित व्यायाम, संतुलित आहार, साखर टाळा, तणाव व्यवस्थापन, नियमित तपासणी",
			Medicines:    "योग्य औषधांसाठी डॉक्टरांचा सल्ला घ्या (मेटफॉर्मिन, इन्सुलिन इ.)",
			Warning:      "ही दीर्घकालीन स्थिती आहे - नियमित वैद्यकीय देखरेख आवश्यक आहे",
		},
		"उच्च_रक्तदाब": {
			Symptoms:     "अनेकदा लक्षणे नसतात, कधीकधी डोकेदुखी, चक्कर, छातीत दुखणे",
			Causes:       "तणाव, मीठ सेवन, लठ्ठपणा, व्यायामाचा अभाव, आनुवंशिकता",
			HomeRemedies: "मीठ कमी करा, नियमित व्यायाम, वजन व्यवस्थापन, तणाव कमी करा, ध्यान",
			Medicines:    "प्रिस्क्रिप्शनसाठी डॉक्टरांचा सल्ला घ्या (ACE inhibitors, Beta blockers इ.)",
			Warning:      "मूक किलर - नियमित रक्तदाब तपासणी आणि वैद्यकीय काळजी आवश्यक आहे",
		},
	},
}
