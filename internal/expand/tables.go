package expand

// SynonymGroups are sets of interchangeable terms. Membership is symmetric:
// a term in a group expands to every other member.
var SynonymGroups = [][]string{
	{"土豆", "马铃薯", "洋芋"},
	{"西红柿", "番茄"},
	{"玉米", "苞谷", "苞米"},
	{"红薯", "地瓜", "番薯"},
	{"香菜", "芫荽"},
	{"鸡蛋", "鸡子"},
	{"面", "面条"},
	{"米饭", "白饭"},
	{"馄饨", "云吞", "抄手"},
	{"饺子", "水饺"},
	{"豆腐脑", "豆花"},
	{"花生", "落花生"},
	{"黄瓜", "青瓜"},
	{"茄子", "矮瓜"},
	{"猪肉", "猪"},
	{"牛肉", "牛"},
	{"鸡肉", "鸡"},
	{"羊肉", "羊"},
	{"辣椒", "海椒"},
	{"酸奶", "优格", "酸牛奶"},
	{"冰淇淋", "雪糕", "冰激凌"},
	{"菠萝", "凤梨"},
	{"奶酪", "芝士", "起司"},
	{"沙拉", "色拉"},
	{"粥", "稀饭"},
	{"西兰花", "西蓝花", "绿花菜"},
}

// relatedPairs seed the symmetric related-term relation.
var relatedPairs = []struct {
	term    string
	related []string
}{
	{"鸡", []string{"鸡肉", "鸡翅", "鸡腿", "鸡胸肉"}},
	{"牛", []string{"牛肉", "牛排", "牛腩"}},
	{"猪", []string{"猪肉", "排骨", "五花肉"}},
	{"羊", []string{"羊肉", "羊排"}},
	{"鱼", []string{"鱼肉", "鱼片", "三文鱼"}},
	{"虾", []string{"虾仁", "大虾"}},
	{"蛋", []string{"鸡蛋", "鸭蛋", "蛋白"}},
	{"面", []string{"拉面", "米线", "米粉", "粉丝"}},
	{"饭", []string{"米饭", "炒饭", "盖饭"}},
	{"汤", []string{"羹", "煲汤"}},
	{"豆腐", []string{"豆浆", "豆花", "腐竹"}},
	{"奶", []string{"牛奶", "酸奶"}},
}

// categoryTable maps a category label to its members.
var categoryTable = []struct {
	label   string
	members []string
}{
	{"肉类", []string{"猪肉", "牛肉", "羊肉", "鸡肉", "鸭肉"}},
	{"海鲜", []string{"虾", "蟹", "鱼", "贝", "鱿鱼"}},
	{"蔬菜", []string{"白菜", "菠菜", "土豆", "番茄", "黄瓜", "茄子", "西兰花"}},
	{"水果", []string{"苹果", "香蕉", "菠萝", "西瓜", "橙子"}},
	{"主食", []string{"米饭", "面条", "馒头", "饺子", "包子", "粥"}},
	{"豆制品", []string{"豆腐", "豆浆", "腐竹", "豆花"}},
	{"乳制品", []string{"牛奶", "酸奶", "奶酪"}},
	{"甜品", []string{"蛋糕", "冰淇淋", "布丁"}},
	{"饮品", []string{"茶", "咖啡", "果汁"}},
}

// headNouns are dish heads split off the end of long queries, longest first.
var headNouns = []string{"面条", "米饭", "炒饭", "饺子", "包子", "火锅", "面", "饭", "汤", "粥", "饼"}

// prefixPatterns are method/flavor/style prefixes split off long queries.
var prefixPatterns = []string{"红烧", "清蒸", "麻辣", "香辣", "糖醋", "宫保", "鱼香", "川味", "家常", "凉拌"}
