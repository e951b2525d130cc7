// Package calculators implements the nutritional planning formulas used
// during clinical consultations: basal metabolic rate, total energy
// expenditure, hydration, body composition indexes and macronutrient
// distribution.
package calculators

// Gender selects the gender-specific terms of the metabolic formulas.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// Activity factors for total energy expenditure.
const (
	ActivitySedentary       = 1.2
	ActivityLight           = 1.375
	ActivityModerate        = 1.55
	ActivityVeryActive      = 1.725
	ActivityExtremelyActive = 1.9
)

// Input carries the patient measurements. Weight in kg, height, waist and
// hip in cm.
type Input struct {
	Weight         float64 `json:"weight"`
	Height         float64 `json:"height"`
	Age            float64 `json:"age"`
	Gender         Gender  `json:"gender"`
	ActivityFactor float64 `json:"activity_factor"`
	Waist          float64 `json:"waist"`
	Hip            float64 `json:"hip"`
	ProteinPerKg   float64 `json:"protein_per_kg"`
	FatPercent     float64 `json:"fat_percent"`
}

// Macro is one macronutrient share of the daily energy target.
type Macro struct {
	Grams   float64 `json:"grams"`
	Kcal    float64 `json:"kcal"`
	Percent float64 `json:"percent"`
}

// Result is the full evaluation of one patient input.
type Result struct {
	TMBMifflin        float64 `json:"tmb_mifflin"`
	TMBHarris         float64 `json:"tmb_harris"`
	GET               float64 `json:"get"`
	WaterML           float64 `json:"water_ml"`
	IMC               float64 `json:"imc"`
	IMCClassification string  `json:"imc_classification"`
	ICQ               float64 `json:"icq"`
	RCEst             float64 `json:"rcest"`
	Protein           Macro   `json:"protein"`
	Fat               Macro   `json:"fat"`
	Carbs             Macro   `json:"carbs"`
	FiberGrams        float64 `json:"fiber_grams"`
}

// MifflinStJeor computes the basal metabolic rate by the Mifflin-St Jeor
// equation.
func MifflinStJeor(weight, height, age float64, gender Gender) float64 {
	tmb := 10*weight + 6.25*height - 5*age
	if gender == GenderMale {
		return tmb + 5
	}
	return tmb - 161
}

// HarrisBenedict computes the basal metabolic rate by the classic
// Harris-Benedict equation.
func HarrisBenedict(weight, height, age float64, gender Gender) float64 {
	if gender == GenderMale {
		return 66.5 + 13.75*weight + 5.003*height - 6.75*age
	}
	return 655.1 + 9.563*weight + 1.85*height - 4.676*age
}

// TotalEnergyExpenditure scales the Mifflin-St Jeor rate by the activity
// factor.
func TotalEnergyExpenditure(weight, height, age float64, gender Gender, activityFactor float64) float64 {
	return MifflinStJeor(weight, height, age, gender) * activityFactor
}

// WaterIntakeML is the daily hydration target at 35 ml per kg of weight.
func WaterIntakeML(weight float64) float64 {
	return weight * 35
}

// IMC is the body mass index for weight in kg and height in cm.
func IMC(weight, height float64) float64 {
	if height <= 0 {
		return 0
	}
	m := height / 100
	return weight / (m * m)
}

// ClassifyIMC returns the Brazilian clinical classification label.
func ClassifyIMC(imc float64) string {
	switch {
	case imc < 18.5:
		return "Baixo Peso"
	case imc < 25:
		return "Eutrofia (Peso Ideal)"
	case imc < 30:
		return "Sobrepeso"
	case imc < 35:
		return "Obesidade Grau I"
	case imc < 40:
		return "Obesidade Grau II"
	default:
		return "Obesidade Grau III"
	}
}

// WaistHipRatio is the ICQ fat distribution index.
func WaistHipRatio(waist, hip float64) float64 {
	if hip <= 0 {
		return 0
	}
	return waist / hip
}

// WaistHeightRatio is the RCEst index; values above 0.5 indicate elevated
// cardiometabolic risk.
func WaistHeightRatio(waist, height float64) float64 {
	if height <= 0 {
		return 0
	}
	return waist / height
}

// Macros splits the daily energy target into protein, fat and carbs.
// Protein is fixed in g/kg, fat as a share of total energy, and carbs take
// the remainder. Fiber follows the 14 g per 1000 kcal recommendation.
func Macros(totalKcal, weight, proteinPerKg, fatPercent float64) (protein, fat, carbs Macro, fiber float64) {
	protein.Grams = weight * proteinPerKg
	protein.Kcal = protein.Grams * 4

	fat.Kcal = totalKcal * fatPercent / 100
	fat.Grams = fat.Kcal / 9
	fat.Percent = fatPercent

	carbs.Kcal = totalKcal - protein.Kcal - fat.Kcal
	carbs.Grams = carbs.Kcal / 4

	if totalKcal > 0 {
		protein.Percent = protein.Kcal / totalKcal * 100
		carbs.Percent = carbs.Kcal / totalKcal * 100
	}
	fiber = totalKcal / 1000 * 14
	return protein, fat, carbs, fiber
}

// Evaluate runs the full calculator suite over one input.
func Evaluate(in Input) Result {
	tmb := MifflinStJeor(in.Weight, in.Height, in.Age, in.Gender)
	get := tmb * in.ActivityFactor
	imc := IMC(in.Weight, in.Height)
	protein, fat, carbs, fiber := Macros(get, in.Weight, in.ProteinPerKg, in.FatPercent)
	return Result{
		TMBMifflin:        tmb,
		TMBHarris:         HarrisBenedict(in.Weight, in.Height, in.Age, in.Gender),
		GET:               get,
		WaterML:           WaterIntakeML(in.Weight),
		IMC:               imc,
		IMCClassification: ClassifyIMC(imc),
		ICQ:               WaistHipRatio(in.Waist, in.Hip),
		RCEst:             WaistHeightRatio(in.Waist, in.Height),
		Protein:           protein,
		Fat:               fat,
		Carbs:             carbs,
		FiberGrams:        fiber,
	}
}
