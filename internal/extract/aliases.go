package extract

import "metabolic-report/internal/analysis"

type patientField int

const (
	fieldAge patientField = iota
	fieldGender
	fieldWeight
	fieldHeight
	fieldActivity
)

// alias maps a normalized key to its field. unit applies when the value
// itself carries none, e.g. {"weight_lb": 170}.
type alias[F any] struct {
	field F
	unit  string
}

var patientAliases = map[string]alias[patientField]{
	"age":           {fieldAge, ""},
	"ageyears":      {fieldAge, ""},
	"gender":        {fieldGender, ""},
	"sex":           {fieldGender, ""},
	"weight":        {fieldWeight, ""},
	"weightkg":      {fieldWeight, "kg"},
	"weightlb":      {fieldWeight, "lb"},
	"weightlbs":     {fieldWeight, "lb"},
	"bodyweight":    {fieldWeight, ""},
	"mass":          {fieldWeight, ""},
	"height":        {fieldHeight, ""},
	"heightcm":      {fieldHeight, "cm"},
	"heightin":      {fieldHeight, "in"},
	"heightm":       {fieldHeight, "m"},
	"stature":       {fieldHeight, ""},
	"activity":      {fieldActivity, ""},
	"activitylevel": {fieldActivity, ""},
	"lifestyle":     {fieldActivity, ""},
}

var valueAliases = map[string]alias[analysis.Field]{
	"rmr":                       {analysis.FieldRMR, ""},
	"rmrkcal":                   {analysis.FieldRMR, "kcal"},
	"rmrkcalday":                {analysis.FieldRMR, "kcal"},
	"ree":                       {analysis.FieldRMR, ""},
	"restingmetabolicrate":      {analysis.FieldRMR, ""},
	"restingenergyexpenditure":  {analysis.FieldRMR, ""},
	"rer":                       {analysis.FieldRER, ""},
	"rq":                        {analysis.FieldRER, ""},
	"respiratoryexchangeratio":  {analysis.FieldRER, ""},
	"respiratoryquotient":       {analysis.FieldRER, ""},
	"vo2":                       {analysis.FieldVO2, ""},
	"vo2mlmin":                  {analysis.FieldVO2, "ml/min"},
	"vo2lmin":                   {analysis.FieldVO2, "l/min"},
	"vco2":                      {analysis.FieldVCO2, ""},
	"vco2mlmin":                 {analysis.FieldVCO2, "ml/min"},
	"vco2lmin":                  {analysis.FieldVCO2, "l/min"},
	"ve":                        {analysis.FieldVE, ""},
	"velmin":                    {analysis.FieldVE, "l/min"},
	"minuteventilation":         {analysis.FieldVE, ""},
	"hr":                        {analysis.FieldHeartRate, ""},
	"heartrate":                 {analysis.FieldHeartRate, ""},
	"restinghr":                 {analysis.FieldHeartRate, ""},
	"restingheartrate":          {analysis.FieldHeartRate, ""},
	"pulse":                     {analysis.FieldHeartRate, ""},
	"vevo2":                     {analysis.FieldVEVO2, ""},
	"eqo2":                      {analysis.FieldVEVO2, ""},
	"ventilatoryequivalento2":   {analysis.FieldVEVO2, ""},
	"vevco2":                    {analysis.FieldVEVCO2, ""},
	"eqco2":                     {analysis.FieldVEVCO2, ""},
	"ventilatoryequivalentco2":  {analysis.FieldVEVCO2, ""},
	"ventilatoryequivalentsco2": {analysis.FieldVEVCO2, ""},
}

var seriesAliases = map[string]alias[analysis.Field]{
	"hr":        {analysis.FieldHeartRate, ""},
	"heartrate": {analysis.FieldHeartRate, ""},
	"pulse":     {analysis.FieldHeartRate, ""},
	"vo2":       {analysis.FieldVO2, ""},
	"vo2mlmin":  {analysis.FieldVO2, "ml/min"},
	"vo2lmin":   {analysis.FieldVO2, "l/min"},
	"vco2":      {analysis.FieldVCO2, ""},
	"vco2mlmin": {analysis.FieldVCO2, "ml/min"},
	"vco2lmin":  {analysis.FieldVCO2, "l/min"},
	"rer":       {analysis.FieldRER, ""},
	"rq":        {analysis.FieldRER, ""},
}
