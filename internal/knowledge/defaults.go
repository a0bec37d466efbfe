package knowledge

// Default returns the built-in analyte table. Ranges are adult reference
// values as commonly printed by Brazilian laboratories; qualitative analytes
// carry no range.
func Default() *Base {
	return MustNew(defaultEntries())
}

func defaultEntries() []Entry {
	return []Entry{
		// Hemograma
		{Name: "Hemoglobina", Keys: []string{"hb", "hgb", "hemoglobin"}, Unit: "g/dL", Category: Hematology, Range: rng(12.0, 16.0)},
		{Name: "Hematócrito", Keys: []string{"ht", "hct", "hematocrit"}, Unit: "%", Category: Hematology, Range: rng(36.0, 48.0)},
		{Name: "Hemácias", Keys: []string{"eritrócitos", "rbc", "glóbulos vermelhos"}, Unit: "milhões/mm³", Category: Hematology, Range: rng(4.0, 5.9)},
		{Name: "VCM", Keys: []string{"volume corpuscular médio", "mcv"}, Unit: "fL", Category: Hematology, Range: rng(80, 100)},
		{Name: "HCM", Keys: []string{"hemoglobina corpuscular média", "mch"}, Unit: "pg", Category: Hematology, Range: rng(27, 32)},
		{Name: "CHCM", Keys: []string{"concentração de hemoglobina corpuscular média", "mchc"}, Unit: "g/dL", Category: Hematology, Range: rng(32, 36)},
		{Name: "RDW", Keys: []string{"rdw-cv"}, Unit: "%", Category: Hematology, Range: rng(11.5, 14.5)},
		{Name: "Leucócitos", Keys: []string{"glóbulos brancos", "wbc", "leucograma"}, Unit: "/mm³", Category: Hematology, Range: rng(4000, 11000)},
		{Name: "Neutrófilos", Keys: []string{"segmentados", "neutrophils"}, Unit: "%", Category: Hematology, Range: rng(40, 75)},
		{Name: "Bastonetes", Keys: []string{"bastões"}, Unit: "%", Category: Hematology, Range: rng(0, 5)},
		{Name: "Linfócitos", Keys: []string{"lymphocytes"}, Unit: "%", Category: Hematology, Range: rng(20, 45)},
		{Name: "Monócitos", Keys: []string{"monocytes"}, Unit: "%", Category: Hematology, Range: rng(2, 10)},
		{Name: "Eosinófilos", Keys: []string{"eosinophils"}, Unit: "%", Category: Hematology, Range: rng(1, 6)},
		{Name: "Basófilos", Keys: []string{"basophils"}, Unit: "%", Category: Hematology, Range: rng(0, 2)},
		{Name: "Plaquetas", Keys: []string{"plt", "platelets", "trombócitos"}, Unit: "/mm³", Category: Hematology, Range: rng(150000, 450000)},
		{Name: "VPM", Keys: []string{"volume plaquetário médio", "mpv"}, Unit: "fL", Category: Hematology, Range: rng(7.5, 11.5)},

		// Glicemia, lipídios, função renal e hepática
		{Name: "Glicose", Keys: []string{"glicemia", "glucose", "glicemia de jejum", "açúcar"}, Unit: "mg/dL", Category: Biochemistry, Range: rng(70, 99)},
		{Name: "Hemoglobina Glicada", Keys: []string{"hba1c", "a1c", "glico-hemoglobina", "hemoglobina glicosilada"}, Unit: "%", Category: Biochemistry, Range: rng(4.0, 5.6)},
		{Name: "Colesterol Total", Keys: []string{"col total", "cholesterol", "colesterol"}, Unit: "mg/dL", Category: Biochemistry, Range: rng(0, 190)},
		{Name: "HDL", Keys: []string{"hdl-c", "colesterol hdl", "hdl colesterol"}, Unit: "mg/dL", Category: Biochemistry, Range: rng(40, 999)},
		{Name: "LDL", Keys: []string{"ldl-c", "colesterol ldl", "ldl colesterol"}, Unit: "mg/dL", Category: Biochemistry, Range: rng(0, 130)},
		{Name: "VLDL", Keys: []string{"vldl-c", "colesterol vldl"}, Unit: "mg/dL", Category: Biochemistry, Range: rng(0, 30)},
		{Name: "Triglicerídeos", Keys: []string{"triglicérides", "triglycerides", "tg"}, Unit: "mg/dL", Category: Biochemistry, Range: rng(0, 150)},
		{Name: "Creatinina", Keys: []string{"creat", "creatinine"}, Unit: "mg/dL", Category: Biochemistry, Range: rng(0.6, 1.2)},
		{Name: "Ureia", Keys: []string{"uréia", "urea", "bun"}, Unit: "mg/dL", Category: Biochemistry, Range: rng(15, 45)},
		{Name: "Ácido Úrico", Keys: []string{"uric acid"}, Unit: "mg/dL", Category: Biochemistry, Range: rng(2.5, 7.0)},
		{Name: "Proteínas Totais", Keys: []string{"proteína total"}, Unit: "g/dL", Category: Biochemistry, Range: rng(6.0, 8.0)},
		{Name: "Albumina", Keys: []string{"albumin"}, Unit: "g/dL", Category: Biochemistry, Range: rng(3.5, 5.0)},
		{Name: "TGO", Keys: []string{"ast", "aspartato aminotransferase"}, Unit: "U/L", Category: Biochemistry, Range: rng(0, 40)},
		{Name: "TGP", Keys: []string{"alt", "alanina aminotransferase"}, Unit: "U/L", Category: Biochemistry, Range: rng(0, 41)},
		{Name: "GGT", Keys: []string{"gama gt", "gama-gt", "gama glutamil transferase"}, Unit: "U/L", Category: Biochemistry, Range: rng(8, 61)},
		{Name: "Fosfatase Alcalina", Keys: []string{"alkaline phosphatase"}, Unit: "U/L", Category: Biochemistry, Range: rng(40, 129)},
		{Name: "Bilirrubina Total", Keys: []string{"bilirrubinas totais"}, Unit: "mg/dL", Category: Biochemistry, Range: rng(0.2, 1.2)},
		{Name: "Bilirrubina Direta", Keys: []string{"bilirrubina conjugada"}, Unit: "mg/dL", Category: Biochemistry, Range: rng(0, 0.3)},
		{Name: "Bilirrubina Indireta", Keys: []string{"bilirrubina não conjugada"}, Unit: "mg/dL", Category: Biochemistry, Range: rng(0.1, 0.9)},
		{Name: "Amilase", Keys: []string{"amylase"}, Unit: "U/L", Category: Biochemistry, Range: rng(28, 100)},

		// Eletrólitos e minerais
		{Name: "Sódio", Keys: []string{"na", "na+", "sodium"}, Unit: "mEq/L", Category: Electrolytes, Range: rng(135, 145)},
		{Name: "Potássio", Keys: []string{"k+", "potassium"}, Unit: "mEq/L", Category: Electrolytes, Range: rng(3.5, 5.1)},
		{Name: "Cloro", Keys: []string{"cloreto", "cl-"}, Unit: "mEq/L", Category: Electrolytes, Range: rng(98, 107)},
		{Name: "Cálcio", Keys: []string{"cálcio total", "ca"}, Unit: "mg/dL", Category: Electrolytes, Range: rng(8.5, 10.5)},
		{Name: "Magnésio", Keys: []string{"mg sérico"}, Unit: "mg/dL", Category: Electrolytes, Range: rng(1.6, 2.6)},
		{Name: "Fósforo", Keys: []string{"fosfato"}, Unit: "mg/dL", Category: Electrolytes, Range: rng(2.5, 4.5)},
		{Name: "Ferro Sérico", Keys: []string{"ferro"}, Unit: "mcg/dL", Category: Electrolytes, Range: rng(60, 170)},
		{Name: "Ferritina", Keys: []string{"ferritin"}, Unit: "ng/mL", Category: Electrolytes, Range: rng(30, 400)},

		// Hormônios
		{Name: "TSH", Keys: []string{"hormônio estimulante da tireoide", "tireotrofina"}, Unit: "mUI/L", Category: Hormonal, Range: rng(0.4, 4.0)},
		{Name: "T4 Livre", Keys: []string{"t4l", "tiroxina livre", "free t4"}, Unit: "ng/dL", Category: Hormonal, Range: rng(0.8, 1.8)},
		{Name: "T4 Total", Keys: []string{"t4", "tiroxina"}, Unit: "mcg/dL", Category: Hormonal, Range: rng(4.5, 12.0)},
		{Name: "T3", Keys: []string{"t3 total", "triiodotironina"}, Unit: "ng/dL", Category: Hormonal, Range: rng(80, 200)},
		{Name: "Tireoglobulina", Keys: []string{"tg"}, Unit: "ng/mL", Category: Hormonal, Range: rng(1.4, 78)},
		{Name: "Anti-TPO", Keys: []string{"antiperoxidase", "anticorpos antiperoxidase"}, Unit: "UI/mL", Category: Hormonal, Range: rng(0, 34)},
		{Name: "Cortisol", Keys: []string{"cortisol basal"}, Unit: "mcg/dL", Category: Hormonal, Range: rng(6.2, 19.4)},
		{Name: "Insulina", Keys: []string{"insulina basal", "insulin"}, Unit: "µUI/mL", Category: Hormonal, Range: rng(2.6, 24.9)},
		{Name: "Testosterona", Keys: []string{"testosterona total", "testosterone"}, Unit: "ng/dL", Category: Hormonal, Range: rng(249, 836)},
		{Name: "Estradiol", Keys: []string{"e2"}, Unit: "pg/mL", Category: Hormonal, Range: rng(12.5, 166)},
		{Name: "Progesterona", Keys: []string{"progesterone"}, Unit: "ng/mL", Category: Hormonal, Range: rng(0.1, 25)},
		{Name: "Prolactina", Keys: []string{"prl"}, Unit: "ng/mL", Category: Hormonal, Range: rng(4.8, 23.3)},
		{Name: "PSA Total", Keys: []string{"psa", "antígeno prostático específico"}, Unit: "ng/mL", Category: Hormonal, Range: rng(0, 4.0)},

		// Vitaminas
		{Name: "Vitamina D", Keys: []string{"25-oh vitamina d", "25(oh)d", "25-hidroxivitamina d", "vitamina d3"}, Unit: "ng/mL", Category: Vitamins, Range: rng(30, 100)},
		{Name: "Vitamina B12", Keys: []string{"b12", "cobalamina"}, Unit: "pg/mL", Category: Vitamins, Range: rng(200, 900)},
		{Name: "Ácido Fólico", Keys: []string{"folato"}, Unit: "ng/mL", Category: Vitamins, Range: rng(3.1, 20)},
		{Name: "Vitamina A", Keys: []string{"retinol"}, Unit: "mg/L", Category: Vitamins, Range: rng(0.3, 0.7)},
		{Name: "Vitamina E", Keys: []string{"tocoferol"}, Unit: "mg/L", Category: Vitamins, Range: rng(5, 20)},
		{Name: "Vitamina C", Keys: []string{"ácido ascórbico"}, Unit: "mg/dL", Category: Vitamins, Range: rng(0.4, 2.0)},

		// Urina tipo I
		{Name: "Densidade Urinária", Keys: []string{"densidade"}, Category: Urinalysis, Range: rng(1.005, 1.030)},
		{Name: "pH Urinário", Keys: []string{"ph"}, Category: Urinalysis, Range: rng(5.0, 8.0)},
		{Name: "Proteinúria", Keys: []string{"proteína urinária", "proteínas na urina"}, Unit: "mg/24h", Category: Urinalysis, Range: rng(0, 150)},
		{Name: "Microalbuminúria", Keys: []string{"albumina urinária"}, Unit: "mg/L", Category: Urinalysis, Range: rng(0, 30)},
		{Name: "Urobilinogênio", Keys: []string{"urobilinogen"}, Unit: "mg/dL", Category: Urinalysis, Range: rng(0.1, 1.0)},
		{Name: "Nitrito", Category: Urinalysis},
		{Name: "Corpos Cetônicos", Keys: []string{"cetonas"}, Category: Urinalysis},

		// Microbiologia
		{Name: "Contagem de Colônias", Keys: []string{"ufc/ml"}, Unit: "UFC/mL", Category: Microbiology},
		{Name: "Urocultura", Category: Microbiology},
		{Name: "Hemocultura", Category: Microbiology},
		{Name: "Baciloscopia", Keys: []string{"baar"}, Category: Microbiology},

		// Marcadores inflamatórios
		{Name: "Proteína C Reativa", Keys: []string{"pcr", "pcr-us", "pcr ultrassensível"}, Unit: "mg/L", Category: Inflammatory, Range: rng(0, 5)},
		{Name: "VHS", Keys: []string{"velocidade de hemossedimentação", "esr"}, Unit: "mm/h", Category: Inflammatory, Range: rng(0, 20)},
		{Name: "Fibrinogênio", Keys: []string{"fibrinogen"}, Unit: "mg/dL", Category: Inflammatory, Range: rng(200, 400)},
		{Name: "Procalcitonina", Keys: []string{"pct"}, Unit: "ng/mL", Category: Inflammatory, Range: rng(0, 0.5)},
		{Name: "Fator Reumatoide", Keys: []string{"fator reumatóide"}, Unit: "UI/mL", Category: Inflammatory, Range: rng(0, 14)},
	}
}
