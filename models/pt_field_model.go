package models

// PTField describes one extractable subject field of the PT national exam,
// with the accuracy-sheet abbreviations it maps to. The catalog is static
// and served to clients building filter predicates and to reconciliation
// producers assigning categories.
type PTField struct {
	Label    string   `json:"label"`
	Group    string   `json:"group"`
	Details  string   `json:"details"`
	Mappings []string `json:"mappings"`
}

var PTFields = []PTField{
	{Label: "臨床症例（運動器）", Group: "1. 【実地問題】", Details: "骨折術後、変形性関節症、スポーツ外傷の症例解釈", Mappings: []string{"運動器", "評価"}},
	{Label: "臨床症例（脳血管）", Group: "1. 【実地問題】", Details: "脳卒中、脊髄損傷の急性期〜回復期評価", Mappings: []string{"中枢", "評価"}},
	{Label: "臨床症例（内部障害）", Group: "1. 【実地問題】", Details: "心不全、COPDの運動負荷試験・リスク管理", Mappings: []string{"内部", "評価"}},
	{Label: "画像・波形診断", Group: "1. 【実地問題】", Details: "X線、MRI、CT、心電図、筋電図の読み取り", Mappings: []string{"内部", "中枢", "運動器"}},
	{Label: "動作分析", Group: "1. 【実地問題】", Details: "異常歩行の目視判別、代償動作の特定", Mappings: []string{"運動学", "ADL"}},
	{Label: "理学療法評価学", Group: "2. 【専門問題】", Details: "形態測定、ROM、MMT、反射、ADL（FIM/BI）", Mappings: []string{"評価", "ADL"}},
	{Label: "理学療法治療学", Group: "2. 【専門問題】", Details: "中枢神経（脳卒中、パーキンソン）、運動器（骨折、OA）、内部障害（循環・呼吸・代謝）、小児（脳性麻痺）、神経筋疾患（ALS、MG）", Mappings: []string{"中枢", "運動器", "内部", "小児"}},
	{Label: "物理療法学", Group: "2. 【専門問題】", Details: "電気、温熱、水、牽引、レーザー", Mappings: []string{"物療"}},
	{Label: "義肢装具学", Group: "2. 【専門問題】", Details: "下肢装具、義足のパーツ、車椅子の適合", Mappings: []string{"義装"}},
	{Label: "解剖学", Group: "3. 【基礎問題】", Details: "骨関節系、筋系、神経系、循環器、呼吸器、消化器", Mappings: []string{"解剖"}},
	{Label: "生理学", Group: "3. 【基礎問題】", Details: "神経生理、筋肉生理、呼吸生理、循環生理、代謝・内分泌", Mappings: []string{"生理"}},
	{Label: "運動学", Group: "3. 【基礎問題】", Details: "運動力学（てこ・重心）、バイオメカニクス、歩行分析、発達", Mappings: []string{"運動学", "人発"}},
	{Label: "人間発達学・心理学・精神医学", Group: "3. 【基礎問題】", Details: "小児の発達、心理的反応、精神疾患", Mappings: []string{"精神", "心理", "人発", "小児"}},
	{Label: "リハビリテーション概論・関係法規", Group: "3. 【基礎問題】", Details: "リハの定義、法律、倫理", Mappings: []string{"リハ概"}},
}
