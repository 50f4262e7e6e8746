package phonetic

// Reference tables for the Chinese encoder. Read-only after init.

// simplifiedTraditional pairs simplified and traditional forms of characters
// common in dish names. Built into both directions by init.
var simplifiedTraditional = [][2]rune{
	{'面', '麵'}, {'鸡', '雞'}, {'鱼', '魚'}, {'汤', '湯'}, {'饭', '飯'},
	{'饺', '餃'}, {'虾', '蝦'}, {'烧', '燒'}, {'炖', '燉'}, {'酱', '醬'},
	{'卤', '滷'}, {'干', '乾'}, {'肠', '腸'}, {'猪', '豬'}, {'鸭', '鴨'},
	{'鹅', '鵝'}, {'锅', '鍋'}, {'馄', '餛'}, {'饨', '飩'}, {'凉', '涼'},
	{'鲜', '鮮'}, {'鲍', '鮑'}, {'龙', '龍'}, {'凤', '鳳'}, {'东', '東'},
	{'红', '紅'}, {'鳝', '鱔'}, {'丝', '絲'}, {'条', '條'}, {'块', '塊'},
	{'团', '糰'}, {'饼', '餅'}, {'馒', '饅'}, {'头', '頭'}, {'线', '線'},
	{'腊', '臘'}, {'烩', '燴'}, {'麦', '麥'}, {'粮', '糧'}, {'莲', '蓮'},
	{'鲤', '鯉'}, {'鳕', '鱈'}, {'蚝', '蠔'}, {'贝', '貝'}, {'罗', '羅'},
	{'萝', '蘿'}, {'卜', '蔔'}, {'姜', '薑'}, {'葱', '蔥'}, {'苹', '蘋'},
	{'风', '風'}, {'黄', '黃'}, {'绿', '綠'}, {'荞', '蕎'}, {'点', '點'},
	{'鲫', '鯽'}, {'鳗', '鰻'}, {'馅', '餡'}, {'烂', '爛'}, {'腌', '醃'},
	{'盐', '鹽'}, {'咸', '鹹'}, {'爷', '爺'}, {'园', '園'}, {'杂', '雜'},
}

var (
	toTraditional = map[rune]rune{}
	toSimplified  = map[rune]rune{}
)

func init() {
	for _, p := range simplifiedTraditional {
		toTraditional[p[0]] = p[1]
		toSimplified[p[1]] = p[0]
	}
}

// heteronyms lists domain characters with more than one reading. The first
// entry is the reading dish names use most; the rest are substituted as
// alternates. Toneless.
var heteronyms = map[rune][]string{
	'行': {"xing", "hang"},
	'长': {"chang", "zhang"},
	'重': {"zhong", "chong"},
	'乐': {"le", "yue"},
	'藏': {"cang", "zang"},
	'薄': {"bao", "bo"},
	'和': {"he", "huo", "hu"},
	'露': {"lu", "lou"},
	'茄': {"qie", "jia"},
	'蛤': {"ge", "ha"},
	'卷': {"juan", "jie"},
	'炮': {"pao", "bao"},
	'曲': {"qu"},
	'扎': {"zha", "za"},
	'沙': {"sha", "sa"},
	'大': {"da", "dai"},
	'壳': {"ke", "qiao"},
	'核': {"he", "hu"},
	'切': {"qie"},
	'咖': {"ka", "ga"},
	'喱': {"li"},
	'种': {"zhong", "chong"},
	'肚': {"du"},
	'发': {"fa"},
	'粥': {"zhou", "yu"},
	'得': {"de", "dei"},
	'血': {"xue", "xie"},
	'蕃': {"fan", "bo"},
}

// alternativeNames are interchangeable names for the same food.
var alternativeNames = [][2]string{
	{"土豆", "马铃薯"},
	{"土豆", "洋芋"},
	{"西红柿", "番茄"},
	{"玉米", "苞谷"},
	{"红薯", "地瓜"},
	{"红薯", "番薯"},
	{"花生", "落花生"},
	{"香菜", "芫荽"},
	{"圆白菜", "卷心菜"},
	{"包菜", "卷心菜"},
	{"茄子", "矮瓜"},
	{"辣椒", "海椒"},
	{"青椒", "甜椒"},
	{"馄饨", "云吞"},
	{"馄饨", "抄手"},
	{"饺子", "水饺"},
	{"豆腐脑", "豆花"},
	{"鸡蛋", "鸡子"},
	{"黄瓜", "青瓜"},
}

// regionalVariants are mainland / Taiwan / Hong Kong naming differences.
var regionalVariants = [][2]string{
	{"冰淇淋", "雪糕"},
	{"冰淇淋", "冰激凌"},
	{"菠萝", "凤梨"},
	{"猕猴桃", "奇异果"},
	{"牛油果", "酪梨"},
	{"方便面", "泡面"},
	{"三明治", "三文治"},
	{"酸奶", "优格"},
	{"土豆", "薯仔"},
	{"西兰花", "花椰菜"},
	{"三文鱼", "鲑鱼"},
	{"奶酪", "起司"},
	{"奶酪", "芝士"},
}

// measureWords are classifiers that can follow a numeral in a food phrase.
// Longer entries first so two-character words match before their prefix.
var measureWords = []string{
	"公斤", "毫升", "人份",
	"个", "碗", "杯", "份", "盘", "块", "片", "条", "根", "只", "克",
	"斤", "勺", "瓶", "罐", "包", "袋", "盒", "串", "粒", "颗", "张", "听",
}

// similarCharacters are visually or phonetically confusable characters that
// users substitute for each other when typing dish names.
var similarCharacters = [][2]string{
	{"蕃", "番"},
	{"炖", "顿"},
	{"焖", "闷"},
	{"烩", "会"},
	{"馍", "摸"},
	{"粑", "巴"},
	{"糍", "滋"},
	{"鲩", "皖"},
	{"蚝", "毫"},
	{"烙", "洛"},
}

// fractionIdioms map a fixed fraction phrase to its numeric form.
var fractionIdioms = [][2]string{
	{"二分之一", "1/2"},
	{"三分之一", "1/3"},
	{"三分之二", "2/3"},
	{"四分之一", "1/4"},
	{"四分之三", "3/4"},
	{"一半", "0.5"},
	{"半", "0.5"},
}
