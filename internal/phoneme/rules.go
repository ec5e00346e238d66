package phoneme

// defaultRules is the curated English table. Consonant rows list every vowel;
// vowel rows list only the vowel-vowel sequences seen in real pronunciations.
var defaultRules = map[Phoneme]Rule{
	"ZH": {
		Alone: "ジュ",
		Next:  map[Phoneme]string{
			"AA": "ジャ",
			"AH": "ジョ",
			"AE": "ジャ",
			"AW": "ジャ",
			"AY": "ジャイ",
			"ER": "ジェ",
			"IY": "ジ",
			"IH": "ジ",
			"UH": "ジュ",
			"UW": "ジュ",
			"EH": "ジェ",
			"EY": "ジェ",
			"AO": "ジョ",
			"OW": "ジョ",
			"OY": "ジョ",
		},
	},
	"DH": {
		Alone: "ズ",
		Next:  map[Phoneme]string{
			"AA": "ザ",
			"AH": "ザ",
			"AE": "ザ",
			"AW": "ザ",
			"AY": "ザイ",
			"ER": "ザー",
			"IY": "ジ",
			"IH": "ジ",
			"UH": "ズ",
			"UW": "ズ",
			"EH": "ゼ",
			"EY": "ゼ",
			"AO": "ゾ",
			"OW": "ゾ",
			"OY": "ゾ",
		},
	},
	"W": {
		Alone: "ウ",
		Next:  map[Phoneme]string{
			"AA": "ワ",
			"AH": "ワ",
			"AE": "ワ",
			"AW": "ワ",
			"AY": "ワイ",
			"ER": "ウィ",
			"IY": "ウィ",
			"IH": "ウィ",
			"UH": "ウ",
			"UW": "ウ",
			"EH": "ウェ",
			"EY": "ウェ",
			"AO": "ウォ",
			"OW": "ウォ",
			"OY": "ウォ",
		},
	},
	"NG": {
		Alone: "ング",
		Next:  map[Phoneme]string{
			"AA": "ンガ",
			"AH": "ンガ",
			"AE": "ンガ",
			"AW": "ンガ",
			"AY": "ンガイ",
			"ER": "ンギ",
			"IY": "ンギ",
			"IH": "ンギ",
			"UH": "ング",
			"UW": "ング",
			"EH": "ンゲ",
			"EY": "ンゲ",
			"AO": "ンゴ",
			"OW": "ンゴ",
			"OY": "ンゴ",
		},
	},
	"Y": {
		Alone: "イ",
		Next:  map[Phoneme]string{
			"AA": "ア",
			"AH": "ア",
			"AE": "ア",
			"AW": "ア",
			"AY": "アイ",
			"ER": "イ",
			"IY": "イ",
			"IH": "イ",
			"UH": "ュ",
			"UW": "ュ",
			"EH": "エ",
			"EY": "エ",
			"AO": "ョ",
			"OW": "ョ",
			"OY": "ョ",
		},
	},
	"TH": {
		Alone: "ス",
		Next:  map[Phoneme]string{
			"AA": "サ",
			"AH": "サ",
			"AE": "サ",
			"AW": "サ",
			"AY": "サイ",
			"ER": "シ",
			"IY": "シ",
			"IH": "シ",
			"UH": "ス",
			"UW": "ス",
			"EH": "セ",
			"EY": "セ",
			"AO": "ソ",
			"OW": "ソ",
			"OY": "ソ",
		},
	},
	"G": {
		Alone: "グ",
		Next:  map[Phoneme]string{
			"AA": "ガ",
			"AH": "ガ",
			"AE": "ガ",
			"AW": "ガ",
			"AY": "ガイ",
			"ER": "ギ",
			"IY": "ギ",
			"IH": "ギ",
			"UH": "グ",
			"UW": "グ",
			"EH": "ゲ",
			"EY": "ゲ",
			"AO": "ゴ",
			"OW": "ゴ",
			"OY": "ゴ",
		},
	},
	"CH": {
		Alone: "チ",
		Next:  map[Phoneme]string{
			"AA": "チャ",
			"AH": "チャ",
			"AE": "チャ",
			"AW": "チャ",
			"AY": "チャイ",
			"ER": "チ",
			"IY": "チ",
			"IH": "チ",
			"UH": "チュ",
			"UW": "チュ",
			"EH": "チェ",
			"EY": "チェ",
			"AO": "チョ",
			"OW": "チョ",
			"OY": "チョ",
		},
	},
	"D": {
		Alone: "ド",
		Next:  map[Phoneme]string{
			"AA": "ダ",
			"AH": "ダ",
			"AE": "ダ",
			"AW": "ダ",
			"AY": "ダイ",
			"ER": "ダー",
			"IY": "ディ",
			"IH": "ディ",
			"UH": "ドゥ",
			"UW": "ドゥ",
			"EH": "デ",
			"EY": "デ",
			"AO": "ド",
			"OW": "ド",
			"OY": "ド",
		},
	},
	"B": {
		Alone: "ブ",
		Next:  map[Phoneme]string{
			"AA": "バ",
			"AH": "バ",
			"AE": "バ",
			"AW": "バウ",
			"AY": "バイ",
			"ER": "ビ",
			"IY": "ビ",
			"IH": "ビ",
			"UH": "ブ",
			"UW": "ブ",
			"EH": "ベ",
			"EY": "ベ",
			"AO": "ボ",
			"OW": "ボ",
			"OY": "ボ",
		},
	},
	"SH": {
		Alone: "シ",
		Next:  map[Phoneme]string{
			"AA": "シャ",
			"AH": "ショ",
			"AE": "シャ",
			"AW": "シャ",
			"AY": "シャイ",
			"ER": "シ",
			"IY": "シー",
			"IH": "シ",
			"UH": "シュ",
			"UW": "シュ",
			"EH": "シェ",
			"EY": "シェ",
			"AO": "ショ",
			"OW": "ショ",
			"OY": "ショ",
		},
	},
	"F": {
		Alone: "フ",
		Next:  map[Phoneme]string{
			"AA": "ファ",
			"AH": "ファ",
			"AE": "ファ",
			"AW": "ファ",
			"AY": "ファイ",
			"ER": "フィ",
			"IY": "フィ",
			"IH": "フィ",
			"UH": "フ",
			"UW": "フ",
			"EH": "フェ",
			"EY": "フェ",
			"AO": "フォ",
			"OW": "フォ",
			"OY": "フォ",
		},
	},
	"K": {
		Alone: "ク",
		Next:  map[Phoneme]string{
			"AA": "カ",
			"AH": "カ",
			"AE": "カ",
			"AW": "カ",
			"AY": "カイ",
			"ER": "キ",
			"IY": "キ",
			"IH": "キ",
			"UH": "ク",
			"UW": "ク",
			"EH": "ケ",
			"EY": "ケ",
			"AO": "コ",
			"OW": "コ",
			"OY": "コ",
		},
	},
	"M": {
		Alone: "ム",
		Next:  map[Phoneme]string{
			"AA": "マ",
			"AH": "マ",
			"AE": "マ",
			"AW": "マウ",
			"AY": "マイ",
			"ER": "ミ",
			"IY": "ミ",
			"IH": "ミ",
			"UH": "ム",
			"UW": "ム",
			"EH": "メ",
			"EY": "メ",
			"AO": "モ",
			"OW": "モ",
			"OY": "モ",
		},
	},
	"R": {
		Alone: "ー",
		Next:  map[Phoneme]string{
			"AA": "ラ",
			"AH": "ラ",
			"AE": "ラ",
			"AW": "ラ",
			"AY": "ライ",
			"ER": "リ",
			"IY": "リ",
			"IH": "リ",
			"UH": "ル",
			"UW": "ル",
			"EH": "レ",
			"EY": "レ",
			"AO": "ロ",
			"OW": "ロ",
			"OY": "ロ",
		},
	},
	"V": {
		Alone: "ブ",
		Next:  map[Phoneme]string{
			"AA": "バ",
			"AH": "バ",
			"AE": "ヴァ",
			"AW": "バ",
			"AY": "バイ",
			"ER": "ビ",
			"IY": "ビ",
			"IH": "ビ",
			"UH": "ブ",
			"UW": "ブ",
			"EH": "ベ",
			"EY": "ベ",
			"AO": "ボ",
			"OW": "ボ",
			"OY": "ボ",
		},
	},
	"Z": {
		Alone: "ズ",
		Next:  map[Phoneme]string{
			"AA": "ザ",
			"AH": "ザ",
			"AE": "ザ",
			"AW": "ザ",
			"AY": "ザイ",
			"ER": "ザー",
			"IY": "ジ",
			"IH": "ジ",
			"UH": "ズ",
			"UW": "ズ",
			"EH": "ゼ",
			"EY": "ゼ",
			"AO": "ゾ",
			"OW": "ゾ",
			"OY": "ゾ",
		},
	},
	"N": {
		Alone: "ン",
		Next:  map[Phoneme]string{
			"AA": "ナ",
			"AH": "ナ",
			"AE": "ナ",
			"AW": "ナ",
			"AY": "ナイ",
			"ER": "ニ",
			"IY": "ニー",
			"IH": "ニ",
			"UH": "ヌ",
			"UW": "ヌ",
			"EH": "ネ",
			"EY": "ネ",
			"AO": "ノ",
			"OW": "ノ",
			"OY": "ノ",
		},
	},
	"P": {
		Alone: "プ",
		Next:  map[Phoneme]string{
			"AA": "パ",
			"AH": "パ",
			"AE": "パ",
			"AW": "パ",
			"AY": "パイ",
			"ER": "ピ",
			"IY": "ピ",
			"IH": "ピ",
			"UH": "プ",
			"UW": "プ",
			"EH": "ペ",
			"EY": "ペ",
			"AO": "ポ",
			"OW": "ポ",
			"OY": "ポ",
		},
	},
	"JH": {
		Alone: "ジ",
		Next:  map[Phoneme]string{
			"AA": "ジャ",
			"AH": "ジャ",
			"AE": "ジャ",
			"AW": "ジャ",
			"AY": "ジャイ",
			"ER": "ジ",
			"IY": "ジ",
			"IH": "ジ",
			"UH": "ジュ",
			"UW": "ジュ",
			"EH": "ジェ",
			"EY": "ジェ",
			"AO": "ジョ",
			"OW": "ジョ",
			"OY": "ジョ",
		},
	},
	"L": {
		Alone: "ル",
		Next:  map[Phoneme]string{
			"AA": "ラ",
			"AH": "ラ",
			"AE": "ラ",
			"AW": "ラ",
			"AY": "ライ",
			"ER": "ラー",
			"IY": "リー",
			"IH": "リ",
			"UH": "ル",
			"UW": "ル",
			"EH": "レ",
			"EY": "レ",
			"AO": "ロ",
			"OW": "ロー",
			"OY": "ロ",
		},
	},
	"HH": {
		Alone: "フ",
		Next:  map[Phoneme]string{
			"AA": "ハ",
			"AH": "ハ",
			"AE": "ハ",
			"AW": "ハウ",
			"AY": "ハイ",
			"ER": "ハリ",
			"IY": "ヒ",
			"IH": "ヒ",
			"UH": "フ",
			"UW": "フ",
			"EH": "ヘ",
			"EY": "ヘ",
			"AO": "ホ",
			"OW": "ホ",
			"OY": "ホ",
		},
	},
	"S": {
		Alone: "ス",
		Next:  map[Phoneme]string{
			"AA": "タ",
			"AH": "タ",
			"AE": "サ",
			"AW": "サ",
			"AY": "サイ",
			"ER": "サ",
			"IY": "シ",
			"IH": "シ",
			"UH": "ス",
			"UW": "ス",
			"EH": "セ",
			"EY": "セイ",
			"AO": "ソ",
			"OW": "ソ",
			"OY": "ソ",
		},
	},
	"T": {
		Alone: "ト",
		Next:  map[Phoneme]string{
			"AA": "トッ",
			"AH": "タ",
			"AE": "タ",
			"AW": "タ",
			"AY": "タイ",
			"ER": "タ",
			"IY": "ティ",
			"IH": "ティ",
			"UH": "チュ",
			"UW": "チュ",
			"EH": "テ",
			"EY": "テ",
			"AO": "ト",
			"OW": "ト",
			"OY": "ト",
		},
	},
	"EY": {
		Alone: "エイ",
		Next:  map[Phoneme]string{
			"AA": "エイアー",
			"AH": "エイ",
			"ER": "エアー",
			"EY": "アー",
			"IY": "エイ",
			"EH": "エイ",
			"AO": "エイオ",
			"OW": "アオ",
			"AW": "アヨウ",
		},
	},
	"AW": {
		Alone: "オウ",
		Next:  map[Phoneme]string{
			"AH": "アウア",
			"IY": "アオイ",
			"UW": "アオウ",
			"ER": "アワー",
			"IH": "アウィ",
		},
	},
	"AA": {
		Alone: "アー",
		Next:  map[Phoneme]string{
			"UW": "オウ",
			"IY": "アイ",
		},
	},
	"AH": {
		Alone: "ア",
		Next:  map[Phoneme]string{
			"ER": "アエル",
			"OW": "アッアウ",
		},
	},
	"IH": {
		Alone: "イ",
	},
	"EH": {
		Alone: "エ",
		Next:  map[Phoneme]string{
			"OW": "エオ",
		},
	},
	"AE": {
		Alone: "ア",
	},
	"OW": {
		Alone: "オー",
		Next:  map[Phoneme]string{
			"AA": "オア",
			"AO": "オウォ",
			"AH": "オア",
			"AE": "オエ",
			"IY": "オイ",
			"IH": "オーウィ",
			"UH": "オウ",
			"EY": "オウエイ",
			"EH": "オフエ",
		},
	},
	"IY": {
		Alone: "イー",
		Next:  map[Phoneme]string{
			"AA": "イア",
			"IY": "イイ",
			"EY": "イー",
			"AH": "イア",
			"AE": "イア",
			"AO": "イオ",
			"ER": "アイヤー",
			"EH": "イエ",
			"IH": "ー",
			"UW": "イウ",
			"OW": "イオ",
		},
	},
	"AY": {
		Alone: "アイ",
		Next:  map[Phoneme]string{
			"AH": "アイア",
			"AA": "アイ",
			"AW": "アイオウ",
			"AE": "アイェ",
			"ER": "アイア",
			"IH": "アイイ",
			"EH": "アイ",
			"IY": "ウイェ",
			"UW": "アユ",
			"OW": "アイオ",
			"EY": "ウイェ",
		},
	},
	"ER": {
		Alone: "アー",
		Next:  map[Phoneme]string{
			"AA": "ア",
			"AY": "アライ",
			"AH": "ア",
			"AE": "アラ",
			"AW": "アラウ",
			"AO": "アロ",
			"EY": "アレイ",
			"ER": "アー",
			"EH": "オレ",
			"UH": "オロウ",
			"OW": "アロ",
			"OY": "アロイ",
			"UW": "ウル",
			"IH": "エリ",
			"IY": "エリ",
		},
	},
	"AO": {
		Alone: "オ",
		Next:  map[Phoneme]string{
			"EH": "アオエ",
		},
	},
	"OY": {
		Alone: "オイ",
		Next:  map[Phoneme]string{
			"ER": "オイヤー",
			"OW": "オヨ",
			"IH": "オイエ",
		},
	},
	"UW": {
		Alone: "ウ",
		Next:  map[Phoneme]string{
			"AA": "ウア",
			"AH": "ウー",
			"ER": "ウアー",
			"EY": "ウエ",
			"IY": "ウイ",
			"IH": "ウエ",
		},
	},
	"UH": {
		Alone: "ウ",
		Next:  map[Phoneme]string{
			"AH": "ウー",
		},
	},
}
