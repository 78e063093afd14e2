package dictionary

// Static phrase tables. These are the curated, highest-priority pairs the
// service can answer without any network call. English keys are lowercase
// with single spaces; Marathi keys exist in Devanagari or romanized form.

// englishToMarathi maps normalized English phrases to Devanagari Marathi.
var englishToMarathi = map[string]string{
	"hello":                      "नमस्कार",
	"hi":                         "नमस्कार",
	"hello how are you":          "नमस्कार तुम्ही कसे आहात",
	"how are you":                "तुम्ही कसे आहात",
	"i am fine":                  "मी ठीक आहे",
	"i am good":                  "मी चांगला आहे",
	"good morning":               "सुप्रभात",
	"good evening":               "शुभ संध्या",
	"good night":                 "शुभ रात्री",
	"good afternoon":             "शुभ दुपार",
	"good day":                   "सुखद दिवस",
	"good to see you":            "तुम्हाला भेटून आनंद झाला",
	"thank you":                  "धन्यवाद",
	"thank you so much":          "खूप खूप धन्यवाद",
	"thanks":                     "धन्यवाद",
	"please":                     "कृपया",
	"yes":                        "होय",
	"no":                         "नाही",
	"sorry":                      "माफ करा",
	"excuse me":                  "माफ करा",
	"what is your name":          "तुमचे नाव काय आहे",
	"my name is":                 "माझे नाव",
	"nice to meet you":           "तुम्हाला भेटून आनंद झाला",
	"goodbye":                    "निरोप",
	"bye":                        "निरोप",
	"see you later":              "पुन्हा भेटू",
	"where":                      "कुठे",
	"what":                       "काय",
	"when":                       "केव्हा",
	"how":                        "कसे",
	"why":                        "का",
	"water":                      "पाणी",
	"food":                       "अन्न",
	"help":                       "मदत",
	"i need help":                "मला मदत हवी",
	"where is the bathroom":      "स्नानगृह कुठे आहे",
	"how much":                   "किती",
	"today":                      "आज",
	"tomorrow":                   "उद्या",
	"yesterday":                  "काल",
	"i love you":                 "मी तुझ्यावर प्रेम करतो",
	"i want to learn programming": "मला प्रोग्रामिंग शिकायचे आहे",
	"i love programming":         "मला प्रोग्रामिंग आवडते",
	"computer":                   "संगणक",
	"software":                   "सॉफ्टवेअर",
}

// marathiToEnglish maps Devanagari Marathi phrases to English. It is wider
// than the inverse of englishToMarathi because several Marathi phrasings
// map to the same English phrase.
var marathiToEnglish = map[string]string{
	"नमस्कार":                    "hello",
	"तुम्ही कसे आहात":            "how are you",
	"मी ठीक आहे":                 "i am fine",
	"मी चांगला आहे":              "i am good",
	"मी काम करत आहे":             "I am working",
	"मी शाळेत जातोय":             "I am going to school",
	"मी घरी जातोय":               "I am going home",
	"मला प्रोग्रामिंग शिकायचे आहे": "I want to learn programming",
	"मला प्रोग्रामिंग आवडते":      "I love programming",
	"सुप्रभात":                   "good morning",
	"शुभ संध्या":                 "good evening",
	"शुभ रात्री":                 "good night",
	"शुभ दुपार":                  "good afternoon",
	"धन्यवाद":                    "thank you",
	"खूप खूप धन्यवाद":            "thank you so much",
	"होय":                        "yes",
	"नाही":                       "no",
	"माफ करा":                    "sorry",
	"कृपया":                      "please",
	"तुमचे नाव काय आहे":          "what is your name",
	"माझे नाव":                   "my name is",
	"तुम्हाला भेटून आनंद झाला":    "nice to meet you",
	"निरोप":                      "goodbye",
	"पुन्हा भेटू":                "see you later",
	"कुठे":                       "where",
	"काय":                        "what",
	"केव्हा":                     "when",
	"कसे":                        "how",
	"का":                         "why",
	"पाणी":                       "water",
	"अन्न":                       "food",
	"मदत":                        "help",
	"मला मदत हवी":                "i need help",
	"स्नानगृह कुठे आहे":          "where is the bathroom",
	"किती":                       "how much",
	"आज":                         "today",
	"उद्या":                      "tomorrow",
	"काल":                        "yesterday",
	"संगणक":                      "computer",
	"सॉफ्टवेअर":                  "software",
}

// romanizedToEnglish maps romanized Marathi words and phrases to English.
// This table also backs the word-by-word fallback for longer romanized
// sentences.
var romanizedToEnglish = map[string]string{
	"namaskar":                     "hello",
	"namaste":                      "hello",
	"dhanyawad":                    "thank you",
	"dhanyabad":                    "thank you",
	"kasa ahat":                    "how are you",
	"kasa ahes":                    "how are you",
	"kasa kay":                     "how are you",
	"tumhi kasa ahat":              "how are you",
	"tumhi kase ahat":              "how are you",
	"tumche nav kay ahe":           "what is your name",
	"majhe nav":                    "my name is",
	"maza nav":                     "my name is",
	"mi kaam karat ahe":            "I am working",
	"mi school la jatoy":           "I am going to school",
	"mi ghari jatoy":               "I am going home",
	"mi khana khattoy":             "I am eating food",
	"mala programming shikayche ahe": "I want to learn programming",
	"mala programming shikayche":   "I want to learn programming",
	"mi programming shikat ahe":    "I am learning programming",
	"programming shikat":           "learning programming",
	"pani":                         "water",
	"anna":                         "food",
	"khana":                        "food",
	"jevan":                        "meal",
	"madad":                        "help",
	"maddat":                       "help",
	"kuthe":                        "where",
	"kay":                          "what",
	"kasa":                         "how",
	"kase":                         "how",
	"kiti":                         "how much",
	"kevha":                        "when",
	"kon":                          "who",
	"hoye":                         "yes",
	"hoy":                          "yes",
	"nahi":                         "no",
	"maaf kara":                    "sorry",
	"krupa kara":                   "please",
	"aaj":                          "today",
	"udya":                         "tomorrow",
	"kal":                          "yesterday",
	"ratri":                        "night",
	"sakal":                        "morning",
	"sandhya":                      "evening",
	"dupari":                       "afternoon",
	"ghar":                         "home",
	"ghara":                        "home",
	"school":                       "school",
	"kaam":                         "work",
	"nokri":                        "job",
	"paisa":                        "money",
	"vel":                          "time",
	"mitra":                        "friend",
	"aai":                          "mother",
	"baba":                         "father",
	"bhau":                         "brother",
	"bahin":                        "sister",
	"tumhi":                        "you",
	"tumi":                         "you",
	"mi":                           "I",
	"amhi":                         "we",
	"te":                           "they",
	"mala":                         "to me",
	"tula":                         "to you",
	"aahe":                         "is",
	"ahe":                          "is",
	"ahat":                         "are",
	"ahes":                         "are",
	"madhe":                        "in",
	"pasun":                        "from",
	"saathi":                       "for",
	"barobar":                      "with",
	"jatoy":                        "going",
	"yetoy":                        "coming",
	"karat":                        "doing",
	"khattoy":                      "eating",
	"pitoy":                        "drinking",
	"boltoy":                       "speaking",
	"baghtoy":                      "watching",
	"vachtoy":                      "reading",
	"lihtoy":                       "writing",
	"zoptoy":                       "sleeping",
	"chaltoy":                      "walking",
	"shikat":                       "learning",
	"shikayche":                    "want to learn",
	"computer":                     "computer",
	"software":                     "software",
	"programming":                  "programming",
}
